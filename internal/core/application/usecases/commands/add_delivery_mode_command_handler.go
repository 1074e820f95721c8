package commands

import (
	"context"
)

// AddDeliveryModeCommandHandler appends a delivery mode to a stored cart.
// Adding a code the cart already offers fails with cart.ErrDeliveryModeAlreadyExists.
type AddDeliveryModeCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddDeliveryModeCommandHandler(uowFactory CartUoWFactory) AddDeliveryModeCommandHandler {
	return AddDeliveryModeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddDeliveryModeCommandHandler) Handle(ctx context.Context, cmd AddDeliveryModeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	c, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	if err = c.AddDeliveryMode(cmd.DeliveryMode()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
