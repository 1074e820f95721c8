package commands

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var ErrAssignPreferredDeliveryModesCommandIsNotConstructed = errors.New(
	"AssignPreferredDeliveryModesCommand must be created via NewAssignPreferredDeliveryModesCommand constructor",
)

// AssignPreferredDeliveryModesCommand triggers a background pass that
// selects a delivery mode for every cart that offers modes but has none
// selected.
type AssignPreferredDeliveryModesCommand struct {
	guard guard.ConstructorGuard
}

func NewAssignPreferredDeliveryModesCommand() AssignPreferredDeliveryModesCommand {
	return AssignPreferredDeliveryModesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AssignPreferredDeliveryModesCommand) Validate() error {
	return c.guard.Validate(ErrAssignPreferredDeliveryModesCommandIsNotConstructed)
}
