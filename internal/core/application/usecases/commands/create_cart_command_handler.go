package commands

import (
	"context"

	"checkout/internal/core/domain/model/cart"
)

// CreateCartCommandHandler stores a new cart without delivery modes.
type CreateCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewCreateCartCommandHandler(uowFactory CartUoWFactory) CreateCartCommandHandler {
	return CreateCartCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCartCommandHandler) Handle(ctx context.Context, cmd CreateCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCart, err := cart.NewCart(cmd.CartID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CartRepository().Add(ctx, newCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
