package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/deliverymode"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("cart", "5f1c")

		assert.Equal(t, "cart", err.ParamName)
		assert.Equal(t, "5f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 5f1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("cart", "5f1c", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: cart, ID is: 5f1c (cause: connection reset)",
			err.Error())
	})

	t.Run("route name with newline stays on one line", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("routeName", "checkout\nReview")

		assert.Equal(t, "object not found: checkout Review", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("deliveryModeCode")

		assert.Equal(t, "deliveryModeCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: deliveryModeCode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate code")
		err := errs.NewValueIsInvalidErrorWithCause("deliveryModes", cause)

		assert.Equal(t, "value is invalid: deliveryModes (cause: duplicate code)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("stepIndex", 7, 0, 3)

		assert.Equal(t, "stepIndex", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 3, err.Max)
		assert.Equal(t, "value is invalid: 7 is stepIndex, min value is 0, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative")
		err := errs.NewValueIsOutOfRangeErrorWithCause("cost", "-1.50", "0", "∞", cause)

		assert.Equal(t,
			"value is invalid: -1.50 is cost, min value is 0, max value is ∞ (cause: negative)",
			err.Error())
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("code", "std\nexpress", 0, 10)

		assert.Contains(t, err.Error(), "std express")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("code")

		assert.Equal(t, "value is required: code", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty token")
		err := errs.NewValueIsRequiredErrorWithCause("preference", cause)

		assert.Equal(t, "value is required: preference (cause: empty token)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsSurviveWrappingAndJoin(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("code"),
		errs.NewValueIsOutOfRangeError("cost", -1, 0, nil),
	)
	wrapped := fmt.Errorf("add delivery mode: %w", joined)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrValueIsOutOfRange)
	require.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, fmt.Errorf("load: %w", errs.NewObjectNotFoundError("cart", "x")), &notFound)
	assert.Equal(t, "cart", notFound.ParamName)
}

func TestIndexedPreferenceErrors(t *testing.T) {
	_, err := deliverymode.ParsePreferences([]string{"FREE", "", "MOST_EXPENSIVE", ""})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t,
		"preference[1]: value is required: preference code\n"+
			"preference[3]: value is required: preference code",
		err.Error())

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "preference code", required.ParamName)
}

func TestJoinedStepErrors(t *testing.T) {
	_, err := checkout.NewStep("", "Gift options", "", checkout.StepType("giftWrap"))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "step type", invalid.ParamName)
	require.Error(t, invalid.Cause)
	assert.Contains(t, invalid.Cause.Error(), `"giftWrap"`)

	var joined interface{ Unwrap() []error }
	require.ErrorAs(t, err, &joined)
	assert.Len(t, joined.Unwrap(), 3)
}

func TestPriceRangeError(t *testing.T) {
	_, err := kernel.NewPriceFromString("0.004")

	var outOfRange *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, "price", outOfRange.ParamName)
	assert.Equal(t, "0.004", outOfRange.Value)
	assert.Equal(t, kernel.MaxPriceAmount.String(), outOfRange.Max)
}

func TestUnknownRouteError(t *testing.T) {
	_, err := checkout.DefaultFlow().NextStep("checkout\nGiftWrap")

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "routeName", notFound.ParamName)
	assert.Equal(t, "object not found: checkout GiftWrap", err.Error())
}
