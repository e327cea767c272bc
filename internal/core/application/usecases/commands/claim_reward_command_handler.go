package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ClaimRewardCommandHandler settles the owner's account and pays the accrued
// reward from the engine's token balance.
//
// An owner who never staked receives zero and nothing is written; a settled
// account with nothing accrued also receives zero. If the engine holds less
// than the payout the claim fails with errs.ErrInsufficientRewardPool and the
// accrued reward is kept. The engine balance is locked before it is checked,
// and an overdraft surfacing later (a concurrent claim or withdrawal
// committed first) is reported the same way.
type ClaimRewardCommandHandler struct {
	uowFactory StakeUoWFactory
	locker     KeyLocker
	clock      ports.Clock
	engine     StakingEngine
}

func NewClaimRewardCommandHandler(
	uowFactory StakeUoWFactory,
	locker KeyLocker,
	clock ports.Clock,
	engine StakingEngine,
) ClaimRewardCommandHandler {
	return ClaimRewardCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		engine:     engine,
	}
}

// Handle returns the amount paid out.
func (h ClaimRewardCommandHandler) Handle(ctx context.Context, cmd ClaimRewardCommand) (kernel.Amount, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Amount{}, err
	}

	unlock := h.locker.Lock(stakeKey(cmd.Owner()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Amount{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StakeAccountRepository()
	account, err := repo.Get(ctx, cmd.Owner())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.ZeroAmount(), nil
	}
	if err != nil {
		return kernel.Amount{}, err
	}

	payout, err := account.Claim(h.clock.Now(), h.engine.Policy)
	if err != nil {
		return kernel.Amount{}, err
	}

	if !payout.IsZero() {
		ledger := uow.AssetLedger()
		locked, lockErr := ledger.LockBalances(ctx, h.engine.Address, cmd.Owner())
		if lockErr != nil {
			return kernel.Amount{}, lockErr
		}
		held := locked[h.engine.Address]
		if held.LessThan(payout) {
			return kernel.Amount{}, errs.NewInsufficientRewardPoolError(payout, held)
		}
		if err = ledger.Transfer(ctx, h.engine.Address, cmd.Owner(), payout); err != nil {
			return kernel.Amount{}, asPoolShortfall(
				asTransferFailed(err, h.engine.Address, cmd.Owner(), payout), h.engine.Address, payout)
		}
	}

	if err = repo.Save(ctx, account); err != nil {
		return kernel.Amount{}, err
	}

	uow.TrackAggregate(account)
	if err = uow.Commit(ctx); err != nil {
		return kernel.Amount{}, asPoolShortfall(err, h.engine.Address, payout)
	}

	return payout, nil
}

// asPoolShortfall turns an overdraft of the engine's balance into
// errs.ErrInsufficientRewardPool. Other errors pass through.
func asPoolShortfall(err error, engine kernel.Address, payout kernel.Amount) error {
	var failed *errs.TransferFailedError
	if !errors.As(err, &failed) || failed.From != engine.String() {
		return err
	}
	var short *errs.InsufficientFundsError
	if !errors.As(failed.Cause, &short) {
		return err
	}
	held, parseErr := kernel.AmountFromDecimal(short.Available)
	if parseErr != nil {
		return err
	}
	return errs.NewInsufficientRewardPoolError(payout, held)
}
