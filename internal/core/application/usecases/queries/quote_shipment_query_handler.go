package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

// QuoteShipmentQueryHandler exposes the PricingEngine to callers ahead of creation.
type QuoteShipmentQueryHandler struct {
	pricing services.PricingEngine
}

func NewQuoteShipmentQueryHandler() QuoteShipmentQueryHandler {
	return QuoteShipmentQueryHandler{pricing: services.NewPricingEngine()}
}

func (h QuoteShipmentQueryHandler) Handle(
	_ context.Context,
	query QuoteShipmentQuery,
) (QuoteShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	price, err := h.pricing.Quote(query.distance, query.weight, query.mode, query.itemType)
	if err != nil {
		return QuoteShipmentQueryResponse{}, err
	}

	return QuoteShipmentQueryResponse{Price: price.String()}, nil
}
