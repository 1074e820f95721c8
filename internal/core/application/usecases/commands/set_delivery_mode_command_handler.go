package commands

import (
	"context"
)

// SetDeliveryModeCommandHandler stores an explicit selection. Codes the
// cart does not offer fail with cart.ErrDeliveryModeNotAvailable.
type SetDeliveryModeCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewSetDeliveryModeCommandHandler(uowFactory CartUoWFactory) SetDeliveryModeCommandHandler {
	return SetDeliveryModeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetDeliveryModeCommandHandler) Handle(ctx context.Context, cmd SetDeliveryModeCommand) error {
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

	if err = c.SetDeliveryMode(cmd.Code()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
