package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var _ ports.ShipmentReader = (*Reader)(nil)

// Reader serves committed shipment state outside of any unit of work.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

func (r *Reader) GetShipment(ctx context.Context, sender kernel.Address, index uint64) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "sender = ? AND idx = ?", sender.String(), index).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", shipment.Key(sender, index))
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *Reader) ListBySender(ctx context.Context, sender kernel.Address, page ports.Page) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := paged(r.db.WithContext(ctx), page).
		Where("sender = ?", sender.String()).
		Order("idx").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

func (r *Reader) CountBySender(ctx context.Context, sender kernel.Address) (uint64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("sender = ?", sender.String()).Count(&count).Error
	return uint64(count), err //nolint:gosec // COUNT is never negative
}

// ListByReceiver joins the receiver index with the shipments it references.
func (r *Reader) ListByReceiver(ctx context.Context, receiver kernel.Address, page ports.Page) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := paged(r.db.WithContext(ctx), page).
		Model(&ShipmentDTO{}).
		Select("shipments.*").
		Joins("JOIN shipment_receiver_refs r ON r.sender = shipments.sender AND r.idx = shipments.idx").
		Where("r.receiver = ?", receiver.String()).
		Order("r.id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainAll(dtos)
}

func (r *Reader) CountByReceiver(ctx context.Context, receiver kernel.Address) (uint64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ReceiverRefDTO{}).Where("receiver = ?", receiver.String()).Count(&count).Error
	return uint64(count), err //nolint:gosec // COUNT is never negative
}

type statusCount struct {
	Status int
	N      int64
}

func (r *Reader) StatsBySender(ctx context.Context, sender kernel.Address) (ports.ShipmentStats, error) {
	tracked := pq.Array([]int64{int64(shipment.Pending), int64(shipment.InTransit), int64(shipment.Delivered)})

	var rows []statusCount
	if err := r.db.WithContext(ctx).Raw(
		`SELECT status, COUNT(*) AS n FROM shipments
		 WHERE sender = ? AND status = ANY(?)
		 GROUP BY status`,
		sender.String(), tracked,
	).Scan(&rows).Error; err != nil {
		return ports.ShipmentStats{}, err
	}

	var stats ports.ShipmentStats
	for _, row := range rows {
		n := uint64(row.N) //nolint:gosec // COUNT is never negative
		stats.Total += n
		switch shipment.Status(row.Status) {
		case shipment.Pending:
			stats.Pending = n
		case shipment.InTransit:
			stats.InTransit = n
		case shipment.Delivered:
			stats.Delivered = n
		}
	}
	return stats, nil
}

func paged(db *gorm.DB, page ports.Page) *gorm.DB {
	db = db.Offset(page.Offset)
	if page.Limit > 0 {
		db = db.Limit(page.Limit)
	}
	return db
}
