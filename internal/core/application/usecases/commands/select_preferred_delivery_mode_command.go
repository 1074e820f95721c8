package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var ErrSelectPreferredDeliveryModeCommandIsNotConstructed = errors.New(
	"SelectPreferredDeliveryModeCommand must be created via NewSelectPreferredDeliveryModeCommand constructor",
)

// SelectPreferredDeliveryModeCommand applies the configured preference
// list to one cart, replacing any earlier selection.
type SelectPreferredDeliveryModeCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSelectPreferredDeliveryModeCommand(cartID kernel.UUID) (SelectPreferredDeliveryModeCommand, error) {
	cmd := SelectPreferredDeliveryModeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartID.Validate(); err != nil {
		return SelectPreferredDeliveryModeCommand{}, err
	}
	cmd.cartID = cartID

	return cmd, nil
}

func (c SelectPreferredDeliveryModeCommand) Validate() error {
	return c.guard.Validate(ErrSelectPreferredDeliveryModeCommandIsNotConstructed)
}

func (c SelectPreferredDeliveryModeCommand) CartID() kernel.UUID {
	return c.cartID
}
