package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetStakeAccountQueryIsNotConstructed = errors.New(
	"GetStakeAccountQuery must be created via NewGetStakeAccountQuery constructor",
)

// GetStakeAccountQuery reads an owner's staking position, including the reward
// a claim would pay right now.
type GetStakeAccountQuery struct {
	owner kernel.Address

	guard guard.ConstructorGuard
}

func NewGetStakeAccountQuery(owner kernel.Address) (GetStakeAccountQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetStakeAccountQuery{}, err
	}
	return GetStakeAccountQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStakeAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetStakeAccountQueryIsNotConstructed)
}

// GetStakeAccountQueryResponse reports amounts in smallest units. LastAccrualTime
// is zero for an owner who never staked.
type GetStakeAccountQueryResponse struct {
	Owner           string
	Principal       string
	AccruedRewards  string
	PendingReward   string
	LastAccrualTime time.Time
	RewardModel     string
}
