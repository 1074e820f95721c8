package commands_test

import (
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/deliverymode"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCartCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateCartCommand(id)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.CartID())
}

func TestNewCreateCartCommand_InvalidCartID(t *testing.T) {
	_, err := commands.NewCreateCartCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddDeliveryModeCommand(t *testing.T) {
	id := kernel.NewUUID()
	cost, _ := kernel.NewPriceFromString("4.99")

	cmd, err := commands.NewAddDeliveryModeCommand(id, "standard-gross", "Standard Delivery", cost)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.CartID())
	assert.Equal(t, "standard-gross", cmd.DeliveryMode().Code())
	assert.Equal(t, "Standard Delivery", cmd.DeliveryMode().Name())
	assert.True(t, cmd.DeliveryMode().Cost().IsEqual(cost))
}

func TestNewAddDeliveryModeCommand_ReportsAllErrors(t *testing.T) {
	_, err := commands.NewAddDeliveryModeCommand(kernel.UUID{}, "", "", kernel.Price{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSetDeliveryModeCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSetDeliveryModeCommand(id, "pickup")

	require.NoError(t, err)
	assert.Equal(t, id, cmd.CartID())
	assert.Equal(t, "pickup", cmd.Code())
}

func TestNewSetDeliveryModeCommand_EmptyCode(t *testing.T) {
	_, err := commands.NewSetDeliveryModeCommand(kernel.NewUUID(), "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSelectPreferredDeliveryModeCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSelectPreferredDeliveryModeCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CartID())

	_, err = commands.NewSelectPreferredDeliveryModeCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCommands_ZeroValuesAreInvalid(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		expected error
	}{
		{"create cart", commands.CreateCartCommand{}.Validate,
			commands.ErrCreateCartCommandIsNotConstructed},
		{"add delivery mode", commands.AddDeliveryModeCommand{}.Validate,
			commands.ErrAddDeliveryModeCommandIsNotConstructed},
		{"set delivery mode", commands.SetDeliveryModeCommand{}.Validate,
			commands.ErrSetDeliveryModeCommandIsNotConstructed},
		{"select preferred", commands.SelectPreferredDeliveryModeCommand{}.Validate,
			commands.ErrSelectPreferredDeliveryModeCommandIsNotConstructed},
		{"assign preferred", commands.AssignPreferredDeliveryModesCommand{}.Validate,
			commands.ErrAssignPreferredDeliveryModesCommandIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.validate(), tt.expected)
		})
	}

	require.NoError(t, commands.NewAssignPreferredDeliveryModesCommand().Validate())
}

var testPreferences = deliverymode.Preferences{
	deliverymode.PreferFree(),
	deliverymode.PreferLeastExpensive(),
}
