package commands

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/deliverymode"
)

// ErrNoPendingCarts is returned when no cart waits for a delivery mode.
var ErrNoPendingCarts = errors.New("no carts without delivery mode")

// AssignPreferredDeliveryModesCommandHandler selects delivery modes for up
// to batchSize pending carts in one transaction. A non-positive batchSize
// processes every pending cart.
type AssignPreferredDeliveryModesCommandHandler struct {
	uowFactory  CartUoWFactory
	selector    cart.ModeSelector
	preferences deliverymode.Preferences
	batchSize   int
}

func NewAssignPreferredDeliveryModesCommandHandler(
	uowFactory CartUoWFactory,
	selector cart.ModeSelector,
	preferences deliverymode.Preferences,
	batchSize int,
) AssignPreferredDeliveryModesCommandHandler {
	return AssignPreferredDeliveryModesCommandHandler{
		uowFactory:  uowFactory,
		selector:    selector,
		preferences: preferences,
		batchSize:   batchSize,
	}
}

// Handle returns how many carts got a delivery mode.
func (h AssignPreferredDeliveryModesCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPreferredDeliveryModesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	carts, err := cartRepo.GetAllWithoutDeliveryMode(ctx, h.batchSize)
	if err != nil {
		return 0, err
	}
	if len(carts) == 0 {
		return 0, ErrNoPendingCarts
	}

	for _, c := range carts {
		if _, err = c.SelectPreferredDeliveryMode(h.selector, h.preferences); err != nil {
			return 0, err
		}

		if err = cartRepo.Update(ctx, c); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(carts), nil
}
