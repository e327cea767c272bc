package stakerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements StakeAccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Get loads the owner's account and locks its row until the transaction ends.
func (r *GormAccountRepository) Get(ctx context.Context, owner kernel.Address) (*stake.Account, error) {
	return get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), owner)
}

// Save inserts or overwrites the owner's account.
func (r *GormAccountRepository) Save(ctx context.Context, aggregate *stake.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}},
			DoUpdates: clause.AssignmentColumns([]string{"principal", "accrued_rewards", "reward_remainder", "last_accrual_time"}),
		}).
		Create(&dto).Error
}

var _ ports.StakeAccountReader = (*Reader)(nil)

// Reader serves committed staking state.
type Reader struct {
	db *gorm.DB
}

func NewReader(db *gorm.DB) *Reader {
	return &Reader{db: db}
}

func (r *Reader) GetAccount(ctx context.Context, owner kernel.Address) (*stake.Account, error) {
	return get(r.db.WithContext(ctx), owner)
}

func get(db *gorm.DB, owner kernel.Address) (*stake.Account, error) {
	var dto AccountDTO
	if err := db.First(&dto, "owner = ?", owner.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stake account", owner.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
