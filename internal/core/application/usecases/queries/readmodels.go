// Package queries contains read operations for retrieving ledger state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read committed state through the reader ports and return flat read
// models; they never lock and never write.
package queries

import (
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// ShipmentResponse is the read model of a single shipment.
type ShipmentResponse struct {
	Sender       string
	Index        uint64
	Receiver     string
	ItemName     string
	Mode         string
	ItemType     string
	Distance     uint64
	Weight       uint64
	Price        string
	Status       string
	IsPaid       bool
	PickupTime   time.Time
	DeliveryTime time.Time
	CreatedAt    time.Time
}

func toShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		Sender:       s.Sender().String(),
		Index:        s.Index(),
		Receiver:     s.Receiver().String(),
		ItemName:     s.ItemName(),
		Mode:         s.Mode().String(),
		ItemType:     s.ItemType().String(),
		Distance:     s.Distance(),
		Weight:       s.Weight(),
		Price:        s.Price().String(),
		Status:       s.Status().String(),
		IsPaid:       s.IsPaid(),
		PickupTime:   s.PickupTime(),
		DeliveryTime: s.DeliveryTime(),
		CreatedAt:    s.CreatedAt(),
	}
}

func toShipmentResponses(list []*shipment.Shipment) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toShipmentResponse(s))
	}
	return out
}
