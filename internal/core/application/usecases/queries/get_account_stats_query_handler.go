package queries

import (
	"context"

	"logistics/internal/core/ports"
)

type GetAccountStatsQueryHandler struct {
	reader ports.ShipmentReader
}

func NewGetAccountStatsQueryHandler(reader ports.ShipmentReader) GetAccountStatsQueryHandler {
	return GetAccountStatsQueryHandler{reader: reader}
}

func (h GetAccountStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAccountStatsQuery,
) (GetAccountStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountStatsQueryResponse{}, err
	}

	stats, err := h.reader.StatsBySender(ctx, query.account)
	if err != nil {
		return GetAccountStatsQueryResponse{}, err
	}

	return GetAccountStatsQueryResponse{
		Account:   query.account.String(),
		Total:     stats.Total,
		Pending:   stats.Pending,
		InTransit: stats.InTransit,
		Delivered: stats.Delivered,
	}, nil
}
