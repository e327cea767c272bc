package services

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// Pricing constants in smallest currency units (1 reference unit = 10^18).
const (
	// BaseFee is K0 = 0.001 reference units.
	BaseFee uint64 = 1_000_000_000_000_000
	// DistanceRate is K1 = 0.0001 reference units per distance unit.
	DistanceRate uint64 = 100_000_000_000_000
	// WeightRate is K2 = 0.0002 reference units per weight unit.
	WeightRate uint64 = 200_000_000_000_000

	// multiplierScale expresses multipliers in per-mille so that 1.2 becomes 1200.
	multiplierScale uint64 = 1_000
)

var modeMultipliers = map[shipment.Mode]uint64{
	shipment.Land:  1_000,
	shipment.Air:   3_000,
	shipment.Water: 500,
}

var itemTypeMultipliers = map[shipment.ItemType]uint64{
	shipment.General: 1_000,
	shipment.Iron:    1_200,
	shipment.Coal:    1_100,
	shipment.Food:    1_500,
	shipment.Fragile: 2_000,
}

// PricingEngine computes shipment quotes.
//
// Formula:
//
//	base  = BaseFee + distance*DistanceRate + weight*WeightRate
//	price = base * modeMultiplier * itemTypeMultiplier
//
// Multipliers are applied as per-mille integers and the product is divided by
// 10^6 once at the end. Every constant is a multiple of 10^14, so the division is
// exact and the quote carries no rounding.
//
// distance == 0 && weight == 0 yields a zero quote; callers reject it before
// creating a shipment.
//
// Example usage:
//
//	engine := services.NewPricingEngine()
//	price, err := engine.Quote(100, 0, shipment.Land, shipment.General)
//	// price == 11_000_000_000_000_000 (0.011 reference units)
type PricingEngine struct{}

// NewPricingEngine returns a PricingEngine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Quote returns the price for the given shipment attributes. It fails with
// errs.ErrValueIsInvalid for an unknown mode or item type and with
// errs.ErrArithmeticOverflow if the result does not fit an Amount.
func (PricingEngine) Quote(
	distance uint64,
	weight uint64,
	mode shipment.Mode,
	itemType shipment.ItemType,
) (kernel.Amount, error) {
	if err := mode.Validate(); err != nil {
		return kernel.Amount{}, err
	}
	if err := itemType.Validate(); err != nil {
		return kernel.Amount{}, err
	}
	if distance == 0 && weight == 0 {
		return kernel.ZeroAmount(), nil
	}

	distancePart, err := kernel.NewAmount(distance).MulUint64(DistanceRate)
	if err != nil {
		return kernel.Amount{}, err
	}
	weightPart, err := kernel.NewAmount(weight).MulUint64(WeightRate)
	if err != nil {
		return kernel.Amount{}, err
	}
	base, err := kernel.NewAmount(BaseFee).Add(distancePart)
	if err != nil {
		return kernel.Amount{}, err
	}
	if base, err = base.Add(weightPart); err != nil {
		return kernel.Amount{}, err
	}

	price, err := base.MulUint64(modeMultipliers[mode])
	if err != nil {
		return kernel.Amount{}, err
	}
	if price, err = price.MulUint64(itemTypeMultipliers[itemType]); err != nil {
		return kernel.Amount{}, err
	}
	return price.DivUint64(multiplierScale * multiplierScale)
}
