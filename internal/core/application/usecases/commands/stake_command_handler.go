package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// StakingEngine identifies the engine's custody account and its reward model.
// It is shared by every staking handler.
type StakingEngine struct {
	Address kernel.Address
	Policy  stake.RewardPolicy
}

// StakeCommandHandler settles the owner's pending reward, pulls the deposit into
// the engine's custody and increases the principal, all in one transaction.
//
// Example:
//
//	handler := NewStakeCommandHandler(uowFactory, locker, clock, engine)
//	cmd, _ := NewStakeCommand(owner, amount)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrTransferFailed):
//	    // missing allowance or balance; nothing changed
//	case err != nil:
//	    return err
//	}
type StakeCommandHandler struct {
	uowFactory StakeUoWFactory
	locker     KeyLocker
	clock      ports.Clock
	engine     StakingEngine
}

func NewStakeCommandHandler(
	uowFactory StakeUoWFactory,
	locker KeyLocker,
	clock ports.Clock,
	engine StakingEngine,
) StakeCommandHandler {
	return StakeCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		clock:      clock,
		engine:     engine,
	}
}

func (h StakeCommandHandler) Handle(ctx context.Context, cmd StakeCommand) error {
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

	if err = account.Deposit(cmd.Amount(), h.clock.Now(), h.engine.Policy); err != nil {
		return err
	}

	err = uow.AssetLedger().TransferFrom(ctx, h.engine.Address, cmd.Owner(), h.engine.Address, cmd.Amount())
	if err != nil {
		return asTransferFailed(err, cmd.Owner(), h.engine.Address, cmd.Amount())
	}

	if err = repo.Save(ctx, account); err != nil {
		return err
	}

	uow.TrackAggregate(account)
	return uow.Commit(ctx)
}

func loadOrOpenAccount(
	ctx context.Context,
	repo ports.StakeAccountRepository,
	owner kernel.Address,
) (*stake.Account, error) {
	account, err := repo.Get(ctx, owner)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return stake.NewAccount(owner)
	}
	return account, err
}

func asTransferFailed(err error, from, to kernel.Address, amount kernel.Amount) error {
	if errors.Is(err, errs.ErrTransferFailed) {
		return err
	}
	return errs.NewTransferFailedError(from.String(), to.String(), amount, err)
}
