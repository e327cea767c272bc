// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// Shipments are keyed by (sender, idx); the receiver index is a separate append-only table
// whose serial id preserves the order in which references were written.
package shipmentrepo

import (
	"strconv"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Amounts and uint64 attributes are stored as decimal text so the full range survives.
type ShipmentDTO struct {
	Sender       string     `gorm:"type:varchar(42);primaryKey"`
	Idx          int64      `gorm:"primaryKey;autoIncrement:false"`
	Receiver     string     `gorm:"type:varchar(42);not null;index"`
	ItemName     string     `gorm:"type:varchar(256);not null"`
	Mode         int        `gorm:"type:smallint;not null"`
	ItemType     int        `gorm:"type:smallint;not null"`
	Distance     string     `gorm:"type:numeric(20,0);not null"`
	Weight       string     `gorm:"type:numeric(20,0);not null"`
	Price        string     `gorm:"type:varchar(78);not null"`
	Status       int        `gorm:"type:smallint;not null;index"`
	PickupTime   *time.Time `gorm:"type:timestamptz"`
	CreatedAt    time.Time  `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	DeliveryTime *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ReceiverRefDTO is one entry of a receiver's shipment index.
type ReceiverRefDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Receiver string `gorm:"type:varchar(42);not null;index"`
	Sender   string `gorm:"type:varchar(42);not null"`
	Idx      int64  `gorm:"not null"`
}

func (ReceiverRefDTO) TableName() string {
	return "shipment_receiver_refs"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		Sender:       s.Sender().String(),
		Idx:          int64(s.Index()), //nolint:gosec // indices are dense per sender
		Receiver:     s.Receiver().String(),
		ItemName:     s.ItemName(),
		Mode:         int(s.Mode()),
		ItemType:     int(s.ItemType()),
		Distance:     strconv.FormatUint(s.Distance(), 10),
		Weight:       strconv.FormatUint(s.Weight(), 10),
		Price:        s.Price().String(),
		Status:       int(s.Status()),
		PickupTime:   optionalTime(s.PickupTime()),
		CreatedAt:    s.CreatedAt().UTC(),
		DeliveryTime: optionalTime(s.DeliveryTime()),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	sender, err := kernel.ParseAddress(dto.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := kernel.ParseAddress(dto.Receiver)
	if err != nil {
		return nil, err
	}
	distance, err := strconv.ParseUint(dto.Distance, 10, 64)
	if err != nil {
		return nil, err
	}
	weight, err := strconv.ParseUint(dto.Weight, 10, 64)
	if err != nil {
		return nil, err
	}
	price, err := kernel.AmountFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	attrs := shipment.Attributes{
		ItemName:   dto.ItemName,
		Mode:       shipment.Mode(dto.Mode),
		ItemType:   shipment.ItemType(dto.ItemType),
		Distance:   distance,
		Weight:     weight,
		PickupTime: derefTime(dto.PickupTime),
	}

	return shipment.RestoreShipment(
		sender,
		uint64(dto.Idx), //nolint:gosec // written from a uint64
		receiver,
		attrs,
		price,
		shipment.Status(dto.Status),
		dto.CreatedAt.UTC(),
		derefTime(dto.DeliveryTime),
	)
}

func toDomainAll(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	out := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
