package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrIndexTaken is returned by Add when another writer already stored the same (sender, index).
var ErrIndexTaken = fmt.Errorf("%w: shipment index already taken", errs.ErrConcurrentUpdate)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// NextIndex returns the number of shipments sender has stored so far.
func (r *GormShipmentRepository) NextIndex(ctx context.Context, sender kernel.Address) (uint64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("sender = ?", sender.String()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return uint64(count), nil //nolint:gosec // COUNT is never negative
}

// Add stores a new shipment and appends it to the receiver index.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrIndexTaken, aggregate.Key())
		}
		return err
	}

	ref := ReceiverRefDTO{Receiver: dto.Receiver, Sender: dto.Sender, Idx: dto.Idx}
	return r.db.WithContext(ctx).Create(&ref).Error
}

// Update saves the mutable part of an existing shipment.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("sender = ? AND idx = ?", dto.Sender, dto.Idx).
		Updates(map[string]any{
			"status":        dto.Status,
			"delivery_time": dto.DeliveryTime,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.Key())
	}
	return nil
}

// Get loads a shipment and locks its row until the transaction ends.
func (r *GormShipmentRepository) Get(ctx context.Context, sender kernel.Address, index uint64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "sender = ? AND idx = ?", sender.String(), index).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", shipment.Key(sender, index))
		}
		return nil, err
	}

	return toDomain(dto)
}
