package outboxrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.OutboxRepository = (*GormOutboxRepository)(nil)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Append(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		dtos = append(dtos, fromDomain(m))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchUnpublished locks the returned rows and skips rows locked by another
// relay, so parallel relays never pick the same message.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ANY(?::uuid[]) AND published_at IS NULL", pq.Array(raw)).
		Update("published_at", at.UTC()).Error
}

// CountUnpublished reports the relay backlog.
func (r *GormOutboxRepository) CountUnpublished(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&MessageDTO{}).Where("published_at IS NULL").Count(&n).Error
	return n, err
}
