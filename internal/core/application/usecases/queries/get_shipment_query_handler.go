package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetShipmentQueryHandler returns a single shipment or errs.ErrObjectNotFound
// when the index is out of range.
type GetShipmentQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetShipmentQueryHandler(reader ports.ShipmentReader) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{reader: reader}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	s, err := h.reader.GetShipment(ctx, query.sender, query.index)
	if err != nil {
		return ShipmentResponse{}, err
	}

	return toShipmentResponse(s), nil
}
