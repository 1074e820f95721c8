package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"checkout/cmd"
	"checkout/internal/core/domain/model/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompositionRoot(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("default_flow_without_config_file", func(t *testing.T) {
		root, err := cmd.NewCompositionRoot(cmd.Config{}, nil, logger)

		require.NoError(t, err)
		assert.Equal(t, checkout.DefaultFlow().Steps(), root.Flow().Steps())
		assert.NotNil(t, root.CreateServer())
		assert.NotNil(t, root.CreateJobManager())
	})

	t.Run("flow_from_config_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "checkout.yaml")
		require.NoError(t, os.WriteFile(path, []byte("express_checkout: true\ndefault_delivery_mode: [MOST_EXPENSIVE]\n"), 0o600))

		root, err := cmd.NewCompositionRoot(cmd.Config{CheckoutConfigPath: path}, nil, logger)

		require.NoError(t, err)
		assert.True(t, root.Flow().IsExpressCheckout())
		assert.Equal(t, []string{"MOST_EXPENSIVE"}, root.Flow().DefaultDeliveryMode().Tokens())
	})

	t.Run("missing_config_file", func(t *testing.T) {
		_, err := cmd.NewCompositionRoot(
			cmd.Config{CheckoutConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}, nil, logger)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load checkout flow")
	})
}
