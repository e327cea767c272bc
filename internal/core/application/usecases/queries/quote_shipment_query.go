package queries

import (
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrQuoteShipmentQueryIsNotConstructed = errors.New(
	"QuoteShipmentQuery must be created via NewQuoteShipmentQuery constructor",
)

// QuoteShipmentQuery asks for the price a shipment with these attributes must carry.
type QuoteShipmentQuery struct {
	distance uint64
	weight   uint64
	mode     shipment.Mode
	itemType shipment.ItemType

	guard guard.ConstructorGuard
}

func NewQuoteShipmentQuery(
	distance, weight uint64,
	mode shipment.Mode,
	itemType shipment.ItemType,
) (QuoteShipmentQuery, error) {
	if err := errors.Join(mode.Validate(), itemType.Validate()); err != nil {
		return QuoteShipmentQuery{}, err
	}
	return QuoteShipmentQuery{
		distance: distance,
		weight:   weight,
		mode:     mode,
		itemType: itemType,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteShipmentQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShipmentQueryIsNotConstructed)
}

// QuoteShipmentQueryResponse carries the quote in smallest units.
type QuoteShipmentQueryResponse struct {
	Price string
}
