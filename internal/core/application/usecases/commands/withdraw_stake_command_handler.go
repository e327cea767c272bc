package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// WithdrawStakeCommandHandler settles the owner's pending reward, decreases the
// principal and pushes the amount back to the owner.
// Withdrawing more than the principal fails with errs.ErrInsufficientFunds and
// changes nothing.
type WithdrawStakeCommandHandler struct {
	uowFactory StakeUoWFactory
	locker     KeyLocker
	clock      ports.Clock
	engine     StakingEngine
}

func NewWithdrawStakeCommandHandler(
	uowFactory StakeUoWFactory,
	locker KeyLocker,
	clock ports.Clock,
	engine StakingEngine,
) WithdrawStakeCommandHandler {
	return WithdrawStakeCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		engine:     engine,
	}
}

func (h WithdrawStakeCommandHandler) Handle(ctx context.Context, cmd WithdrawStakeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(stakeKey(cmd.Owner()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StakeAccountRepository()
	account, err := loadOrOpenAccount(ctx, repo, cmd.Owner())
	if err != nil {
		return err
	}

	if err = account.Withdraw(cmd.Amount(), h.clock.Now(), h.engine.Policy); err != nil {
		return err
	}

	if err = uow.AssetLedger().Transfer(ctx, h.engine.Address, cmd.Owner(), cmd.Amount()); err != nil {
		return asTransferFailed(err, h.engine.Address, cmd.Owner(), cmd.Amount())
	}

	if err = repo.Save(ctx, account); err != nil {
		return err
	}

	uow.TrackAggregate(account)
	return uow.Commit(ctx)
}
