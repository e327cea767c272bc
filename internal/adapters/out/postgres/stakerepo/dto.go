// Package stakerepo persists staking accounts.
package stakerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stake"
)

// AccountDTO is one row per owner that ever staked.
type AccountDTO struct {
	Owner           string    `gorm:"type:varchar(42);primaryKey"`
	Principal       string    `gorm:"type:varchar(78);not null"`
	AccruedRewards  string    `gorm:"type:varchar(78);not null"`
	RewardRemainder string    `gorm:"type:varchar(78);not null;default:'0'"`
	LastAccrualTime time.Time `gorm:"type:timestamptz;not null"`
}

func (AccountDTO) TableName() string {
	return "stake_accounts"
}

func fromDomain(a *stake.Account) AccountDTO {
	return AccountDTO{
		Owner:           a.Owner().String(),
		Principal:       a.Principal().String(),
		AccruedRewards:  a.AccruedRewards().String(),
		RewardRemainder: a.RewardRemainder().String(),
		LastAccrualTime: a.LastAccrualTime().UTC(),
	}
}

func toDomain(dto AccountDTO) (*stake.Account, error) {
	owner, err := kernel.ParseAddress(dto.Owner)
	if err != nil {
		return nil, err
	}
	principal, err := kernel.AmountFromDecimal(dto.Principal)
	if err != nil {
		return nil, err
	}
	accrued, err := kernel.AmountFromDecimal(dto.AccruedRewards)
	if err != nil {
		return nil, err
	}
	remainder := kernel.ZeroAmount()
	if dto.RewardRemainder != "" {
		if remainder, err = kernel.AmountFromDecimal(dto.RewardRemainder); err != nil {
			return nil, err
		}
	}
	return stake.RestoreAccount(owner, principal, accrued, remainder, dto.LastAccrualTime.UTC())
}
