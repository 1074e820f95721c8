package commands

import (
	"context"

	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/deliverymode"
)

// SelectPreferredDeliveryModeCommandHandler picks a delivery mode for one
// cart with the selector and the checkout's default preferences.
//
//	handler := NewSelectPreferredDeliveryModeCommandHandler(
//	    uowFactory, services.NewDeliveryModeSelector(), flow.DefaultDeliveryMode())
//	code, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoCandidates) {
//	    // the cart offers no delivery modes yet
//	}
type SelectPreferredDeliveryModeCommandHandler struct {
	uowFactory  CartUoWFactory
	selector    cart.ModeSelector
	preferences deliverymode.Preferences
}

func NewSelectPreferredDeliveryModeCommandHandler(
	uowFactory CartUoWFactory,
	selector cart.ModeSelector,
	preferences deliverymode.Preferences,
) SelectPreferredDeliveryModeCommandHandler {
	return SelectPreferredDeliveryModeCommandHandler{
		uowFactory:  uowFactory,
		selector:    selector,
		preferences: preferences,
	}
}

// Handle returns the selected code.
func (h SelectPreferredDeliveryModeCommandHandler) Handle(
	ctx context.Context,
	cmd SelectPreferredDeliveryModeCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	c, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return "", err
	}

	code, err := c.SelectPreferredDeliveryMode(h.selector, h.preferences)
	if err != nil {
		return "", err
	}

	if err = cartRepo.Update(ctx, c); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return code, nil
}
