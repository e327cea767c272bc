package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type parcel struct {
		weight uint64
		guard  guard.ConstructorGuard
	}
	errParcelNotConstructed := errors.New("parcel must be created via newParcel")

	newParcel := func(weight uint64) (parcel, error) {
		if weight == 0 {
			return parcel{}, errors.New("weight is required")
		}
		return parcel{weight: weight, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		p, err := newParcel(12)
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errParcelNotConstructed))
		assert.Equal(t, uint64(12), p.weight)
	})

	t.Run("rejected_by_constructor_stays_unconstructed", func(t *testing.T) {
		p, err := newParcel(0)
		require.Error(t, err)
		require.ErrorIs(t, p.guard.Validate(errParcelNotConstructed), errParcelNotConstructed)
	})
}
