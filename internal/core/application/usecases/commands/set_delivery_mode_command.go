package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrSetDeliveryModeCommandIsNotConstructed = errors.New(
	"SetDeliveryModeCommand must be created via NewSetDeliveryModeCommand constructor",
)

// SetDeliveryModeCommand selects a delivery mode explicitly, the way a
// shopper does on the delivery mode step.
type SetDeliveryModeCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	code   string

	guard guard.ConstructorGuard
}

func NewSetDeliveryModeCommand(cartID kernel.UUID, code string) (SetDeliveryModeCommand, error) {
	cmd := SetDeliveryModeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCode(code),
	); err != nil {
		return SetDeliveryModeCommand{}, err
	}

	return cmd, nil
}

func (c SetDeliveryModeCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryModeCommandIsNotConstructed)
}

func (c SetDeliveryModeCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c SetDeliveryModeCommand) Code() string {
	return c.code
}

func (c *SetDeliveryModeCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *SetDeliveryModeCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
