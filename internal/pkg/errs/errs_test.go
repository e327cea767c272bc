package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipment", "0xA1/3")

		assert.Equal(t, "shipment", err.ParamName)
		assert.Equal(t, "0xA1/3", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 0xA1/3", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("stake account", "0xB2", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: stake account, ID is: 0xB2 (cause: record not found)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("numeric index renders with its type", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("index", uint64(7))
		assert.Equal(t, "object not found: %!s(uint64=7)", err.Error())
	})

	t.Run("line breaks in ids are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipment", "0xA1\r\n3")
		assert.Equal(t, "object not found: 0xA1 3", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("mode")
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is invalid: mode", err.Error())

	withCause := errs.NewValueIsInvalidErrorWithCause("mode", errors.New(`"Rail" is not a valid mode`))
	assert.Equal(t, `value is invalid: mode (cause: "Rail" is not a valid mode)`, withCause.Error())
	assert.ErrorIs(t, withCause, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("limit", 900, 0, 500)

		assert.Equal(t, 900, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 500, err.Max)
		assert.Equal(t, "value is invalid: 900 is limit, min value is 0, max value is 500", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("page too large")
		err := errs.NewValueIsOutOfRangeErrorWithCause("offset", -1, 0, "unbounded", cause)

		assert.Equal(t,
			"value is invalid: -1 is offset, min value is 0, max value is unbounded (cause: page too large)",
			err.Error())
	})

	t.Run("string values lose line breaks", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("itemName", "pallet\nof coal", 1, 256)
		assert.Contains(t, err.Error(), "pallet of coal")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("itemName")
	assert.Equal(t, "value is required: itemName", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("receiver", errors.New("missing"))
	assert.Equal(t, "value is required: receiver (cause: missing)", withCause.Error())
	assert.ErrorIs(t, withCause, errs.ErrValueIsRequired)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := errors.Join(
		errs.NewValueIsRequiredError("itemName"),
		errs.NewValueIsOutOfRangeError("limit", 900, 0, 500),
	)

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	require.ErrorIs(t, wrapped, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)
}
