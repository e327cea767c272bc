package services_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingEngine_Quote(t *testing.T) {
	engine := services.NewPricingEngine()

	testCases := []struct {
		name     string
		distance uint64
		weight   uint64
		mode     shipment.Mode
		itemType shipment.ItemType
		expected string
	}{
		{"land general distance only", 100, 0, shipment.Land, shipment.General, "11000000000000000"},
		{"air general", 100, 0, shipment.Air, shipment.General, "33000000000000000"},
		{"water general", 100, 0, shipment.Water, shipment.General, "5500000000000000"},
		{"land iron with weight", 10, 5, shipment.Land, shipment.Iron, "3600000000000000"},
		{"air fragile", 1, 1, shipment.Air, shipment.Fragile, "7800000000000000"},
		{"water coal", 0, 10, shipment.Water, shipment.Coal, "1650000000000000"},
		{"land food", 50, 50, shipment.Land, shipment.Food, "24000000000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := engine.Quote(tc.distance, tc.weight, tc.mode, tc.itemType)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price.String())
		})
	}
}

func TestPricingEngine_QuoteIsDeterministic(t *testing.T) {
	engine := services.NewPricingEngine()
	for _, mode := range []shipment.Mode{shipment.Land, shipment.Air, shipment.Water} {
		for _, it := range []shipment.ItemType{shipment.General, shipment.Iron, shipment.Coal, shipment.Food, shipment.Fragile} {
			a, err := engine.Quote(123, 45, mode, it)
			require.NoError(t, err)
			b, err := services.NewPricingEngine().Quote(123, 45, mode, it)
			require.NoError(t, err)
			assert.True(t, a.IsEqual(b), "%s/%s", mode, it)
		}
	}
}

func TestPricingEngine_DegenerateQuote(t *testing.T) {
	price, err := services.NewPricingEngine().Quote(0, 0, shipment.Air, shipment.Fragile)
	require.NoError(t, err)
	assert.True(t, price.IsZero())
}

func TestPricingEngine_InvalidEnums(t *testing.T) {
	engine := services.NewPricingEngine()

	_, err := engine.Quote(1, 1, shipment.ModeUnknown, shipment.General)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = engine.Quote(1, 1, shipment.Land, shipment.ItemType(99))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPricingEngine_LargeInputsDoNotWrap(t *testing.T) {
	price, err := services.NewPricingEngine().Quote(math.MaxUint64, math.MaxUint64, shipment.Air, shipment.Fragile)
	require.NoError(t, err)

	floor, err := kernel.NewAmount(math.MaxUint64).MulUint64(services.WeightRate)
	require.NoError(t, err)
	assert.True(t, floor.LessThan(price))
}
