package queries

import (
	"context"

	"logistics/internal/core/ports"
)

type GetSenderShipmentsQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetSenderShipmentsQueryHandler(reader ports.ShipmentReader) GetSenderShipmentsQueryHandler {
	return GetSenderShipmentsQueryHandler{reader: reader}
}

func (h GetSenderShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetSenderShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.reader.ListBySender(ctx, query.sender, query.page)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}

type GetReceiverShipmentsQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetReceiverShipmentsQueryHandler(reader ports.ShipmentReader) GetReceiverShipmentsQueryHandler {
	return GetReceiverShipmentsQueryHandler{reader: reader}
}

func (h GetReceiverShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetReceiverShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.reader.ListByReceiver(ctx, query.receiver, query.page)
	if err != nil {
		return nil, err
	}
	return toShipmentResponses(list), nil
}
