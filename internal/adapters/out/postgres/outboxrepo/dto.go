// Package outboxrepo stores domain events written in the same transaction as the
// state change that produced them, for later relay.
package outboxrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one outbox row. Seq is assigned by the database and fixes relay order.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"type:bigserial;<-:false;uniqueIndex"`
	Name        string     `gorm:"type:varchar(64);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"type:timestamptz;not null"`
	PublishedAt *time.Time `gorm:"type:timestamptz;index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(msg ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:         msg.ID.Bytes(),
		Name:       msg.Name,
		Payload:    msg.Payload,
		OccurredAt: msg.OccurredAt.UTC(),
	}
}

func toDomain(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:         id,
		Name:       dto.Name,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt.UTC(),
	}, nil
}
