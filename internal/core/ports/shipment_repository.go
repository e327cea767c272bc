package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Shipments are keyed by (sender, index) and are never deleted.
type ShipmentRepository interface {
	// NextIndex returns the index the sender's next shipment will receive,
	// which equals the number of shipments the sender has created.
	NextIndex(ctx context.Context, sender kernel.Address) (uint64, error)

	// Add appends a new shipment to the sender's sequence and a reference to it
	// to the receiver's index.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists a status change of an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get loads the shipment for update. Returns errs.ErrObjectNotFound when
	// index is out of range for sender.
	Get(ctx context.Context, sender kernel.Address, index uint64) (*shipment.Shipment, error)
}
