// Package services provides domain services that hold business rules which do not
// belong to a single aggregate.
//
// The package includes:
//   - PricingEngine: the deterministic fixed-point quote for a shipment
//   - ProportionalRewardPolicy and FlatRewardPolicy: the swappable reward models
//     consumed by stake.Account during settlement
//
// All services here are pure: they read no clock, touch no storage and return
// identical results for identical inputs.
package services
