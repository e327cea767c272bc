package queries

import (
	"context"

	"logistics/internal/core/ports"
)

type GetSenderCountQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetSenderCountQueryHandler(reader ports.ShipmentReader) GetSenderCountQueryHandler {
	return GetSenderCountQueryHandler{reader: reader}
}

func (h GetSenderCountQueryHandler) Handle(ctx context.Context, query GetSenderCountQuery) (uint64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.reader.CountBySender(ctx, query.sender)
}

type GetReceiverCountQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetReceiverCountQueryHandler(reader ports.ShipmentReader) GetReceiverCountQueryHandler {
	return GetReceiverCountQueryHandler{reader: reader}
}

func (h GetReceiverCountQueryHandler) Handle(ctx context.Context, query GetReceiverCountQuery) (uint64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.reader.CountByReceiver(ctx, query.receiver)
}
