package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

const (
	EventShipmentCreated   = "ShipmentCreated"
	EventShipmentInTransit = "ShipmentInTransit"
	EventShipmentDelivered = "ShipmentDelivered"
)

type eventHeader struct {
	id kernel.UUID
	at time.Time
}

func (h eventHeader) EventID() kernel.UUID  { return h.id }
func (h eventHeader) OccurredAt() time.Time { return h.at }

// CreatedEvent is emitted when a shipment is created and its price escrowed.
type CreatedEvent struct {
	eventHeader
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Index     uint64    `json:"index"`
	Price     string    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

func (CreatedEvent) EventName() string { return EventShipmentCreated }

// InTransitEvent is emitted when the sender starts a shipment.
type InTransitEvent struct {
	eventHeader
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Index     uint64    `json:"index"`
	Timestamp time.Time `json:"timestamp"`
}

func (InTransitEvent) EventName() string { return EventShipmentInTransit }

// DeliveredEvent is emitted when the receiver completes a shipment.
type DeliveredEvent struct {
	eventHeader
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Index     uint64    `json:"index"`
	Price     string    `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

func (DeliveredEvent) EventName() string { return EventShipmentDelivered }
