package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrCreateCartCommandIsNotConstructed = errors.New(
	"CreateCartCommand must be created via NewCreateCartCommand constructor",
)

// CreateCartCommand registers an empty cart under a caller-chosen ID.
type CreateCartCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateCartCommand(cartID kernel.UUID) (CreateCartCommand, error) {
	cmd := CreateCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCartID(cartID); err != nil {
		return CreateCartCommand{}, err
	}

	return cmd, nil
}

func (c CreateCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateCartCommandIsNotConstructed)
}

func (c CreateCartCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c *CreateCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}
