package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// GetStakeAccountQueryHandler previews accrual with the engine's policy at the
// clock's current time without settling.
type GetStakeAccountQueryHandler struct {
	reader ports.StakeAccountReader
	clock  ports.Clock
	policy stake.RewardPolicy
}

func NewGetStakeAccountQueryHandler(
	reader ports.StakeAccountReader,
	clock ports.Clock,
	policy stake.RewardPolicy,
) GetStakeAccountQueryHandler {
	return GetStakeAccountQueryHandler{reader: reader, clock: clock, policy: policy}
}

func (h GetStakeAccountQueryHandler) Handle(
	ctx context.Context,
	query GetStakeAccountQuery,
) (GetStakeAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStakeAccountQueryResponse{}, err
	}

	account, err := h.reader.GetAccount(ctx, query.owner)
	if errors.Is(err, errs.ErrObjectNotFound) {
		account, err = stake.NewAccount(query.owner)
	}
	if err != nil {
		return GetStakeAccountQueryResponse{}, err
	}

	pending, err := account.PendingReward(h.clock.Now(), h.policy)
	if err != nil {
		return GetStakeAccountQueryResponse{}, err
	}

	return GetStakeAccountQueryResponse{
		Owner:           account.Owner().String(),
		Principal:       account.Principal().String(),
		AccruedRewards:  account.AccruedRewards().String(),
		PendingReward:   pending.String(),
		LastAccrualTime: account.LastAccrualTime(),
		RewardModel:     h.policy.Name(),
	}, nil
}
