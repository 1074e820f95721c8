package commands

import (
	"errors"

	"checkout/internal/core/domain/model/deliverymode"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrAddDeliveryModeCommandIsNotConstructed = errors.New(
	"AddDeliveryModeCommand must be created via NewAddDeliveryModeCommand constructor",
)

// AddDeliveryModeCommand offers one more delivery mode for a cart.
//
//	cost, _ := kernel.NewPriceFromString("4.99")
//	cmd, err := NewAddDeliveryModeCommand(cartID, "standard-gross", "Standard Delivery", cost)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddDeliveryModeCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	mode   deliverymode.DeliveryMode

	guard guard.ConstructorGuard
}

// NewAddDeliveryModeCommand reports every invalid argument at once.
func NewAddDeliveryModeCommand(
	cartID kernel.UUID,
	code string,
	name string,
	cost kernel.Price,
) (AddDeliveryModeCommand, error) {
	cmd := AddDeliveryModeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setMode(code, name, cost),
	); err != nil {
		return AddDeliveryModeCommand{}, err
	}

	return cmd, nil
}

func (c AddDeliveryModeCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryModeCommandIsNotConstructed)
}

func (c AddDeliveryModeCommand) CartID() kernel.UUID {
	return c.cartID
}

func (c AddDeliveryModeCommand) DeliveryMode() deliverymode.DeliveryMode {
	return c.mode
}

func (c *AddDeliveryModeCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *AddDeliveryModeCommand) setMode(code, name string, cost kernel.Price) error {
	mode, err := deliverymode.NewDeliveryMode(code, name, cost)
	if err != nil {
		return err
	}

	c.mode = mode
	return nil
}
