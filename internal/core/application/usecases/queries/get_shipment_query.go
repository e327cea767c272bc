package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery reads the shipment at index of sender's sequence.
type GetShipmentQuery struct {
	sender kernel.Address
	index  uint64

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(sender kernel.Address, index uint64) (GetShipmentQuery, error) {
	if err := sender.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{sender: sender, index: index, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}
