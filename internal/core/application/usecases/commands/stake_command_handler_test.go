package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var stakingEngine = commands.StakingEngine{Address: engine, Policy: countingPolicy{}}

func notFound() error { return errs.NewObjectNotFoundError("stake account", owner.String()) }

func restoredAccount(t *testing.T, principal, accrued uint64, last time.Time) *stake.Account {
	t.Helper()
	a, err := stake.RestoreAccount(owner, kernel.NewAmount(principal), kernel.NewAmount(accrued), kernel.ZeroAmount(), last)
	require.NoError(t, err)
	return a
}

func TestStakeCommandHandler_Handle_NewAccount(t *testing.T) {
	ctx := t.Context()
	amount := kernel.NewAmount(100)
	cmd, err := commands.NewStakeCommand(owner, amount)
	require.NoError(t, err)

	repo := new(MockStakeAccountRepository)
	ledger := new(MockAssetLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StakeAccountRepository").Return(repo).Once(),
		repo.On("Get", ctx, owner).Return(nil, notFound()).Once(),
		uow.On("AssetLedger").Return(ledger).Once(),
		ledger.On("TransferFrom", ctx, engine, owner, engine, amount).Return(nil).Once(),
		repo.On("Save", ctx, mock.MatchedBy(func(a *stake.Account) bool {
			return a.Principal().IsEqual(amount) && a.LastAccrualTime().Equal(now)
		})).Return(nil).Once(),
		uow.On("TrackAggregate", mock.AnythingOfType("*stake.Account")).Return().Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	locker := &recordingLocker{}
	h := commands.NewStakeCommandHandler(stakeFactory{uow}, locker, fixedClock{now}, stakingEngine)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, []string{"stake:" + owner.String()}, locker.keys)
	repo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStakeCommandHandler_Handle_SettlesBeforeDeposit(t *testing.T) {
	ctx := t.Context()
	account := restoredAccount(t, 50, 0, now.Add(-10*time.Second))
	cmd, _ := commands.NewStakeCommand(owner, kernel.NewAmount(50))

	repo := new(MockStakeAccountRepository)
	ledger := new(MockAssetLedger)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StakeAccountRepository").Return(repo).Once()
	repo.On("Get", ctx, owner).Return(account, nil).Once()
	uow.On("AssetLedger").Return(ledger).Once()
	ledger.On("TransferFrom", ctx, engine, owner, engine, kernel.NewAmount(50)).Return(nil).Once()
	repo.On("Save", ctx, account).Return(nil).Once()
	uow.On("TrackAggregate", account).Return().Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewStakeCommandHandler(stakeFactory{uow}, &recordingLocker{}, fixedClock{now}, stakingEngine)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "100", account.Principal().String())
	assert.Equal(t, "10", account.AccruedRewards().String())
}

func TestStakeCommandHandler_Handle_TransferFails(t *testing.T) {
	ctx := t.Context()
	amount := kernel.NewAmount(100)
	cmd, _ := commands.NewStakeCommand(owner, amount)

	repo := new(MockStakeAccountRepository)
	ledger := new(MockAssetLedger)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StakeAccountRepository").Return(repo).Once()
	repo.On("Get", ctx, owner).Return(nil, notFound()).Once()
	uow.On("AssetLedger").Return(ledger).Once()
	ledger.On("TransferFrom", ctx, engine, owner, engine, amount).
		Return(errs.NewTransferFailedError(owner.String(), engine.String(), amount, errors.New("allowance"))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewStakeCommandHandler(stakeFactory{uow}, &recordingLocker{}, fixedClock{now}, stakingEngine)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransferFailed)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewStakeCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewStakeCommand(owner, kernel.ZeroAmount())
	require.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestWithdrawStakeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := restoredAccount(t, 100, 0, now)
	amount := kernel.NewAmount(50)
	cmd, err := commands.NewWithdrawStakeCommand(owner, amount)
	require.NoError(t, err)

	repo := new(MockStakeAccountRepository)
	ledger := new(MockAssetLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StakeAccountRepository").Return(repo).Once(),
		repo.On("Get", ctx, owner).Return(account, nil).Once(),
		uow.On("AssetLedger").Return(ledger).Once(),
		ledger.On("Transfer", ctx, engine, owner, amount).Return(nil).Once(),
		repo.On("Save", ctx, account).Return(nil).Once(),
		uow.On("TrackAggregate", account).Return().Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewWithdrawStakeCommandHandler(stakeFactory{uow}, &recordingLocker{}, fixedClock{now}, stakingEngine)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "50", account.Principal().String())
	uow.AssertExpectations(t)
}

func TestWithdrawStakeCommandHandler_Handle_InsufficientFunds(t *testing.T) {
	ctx := t.Context()
	account := restoredAccount(t, 50, 0, now)
	cmd, _ := commands.NewWithdrawStakeCommand(owner, kernel.NewAmount(200))

	repo := new(MockStakeAccountRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StakeAccountRepository").Return(repo).Once()
	repo.On("Get", ctx, owner).Return(account, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewWithdrawStakeCommandHandler(stakeFactory{uow}, &recordingLocker{}, fixedClock{now}, stakingEngine)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientFunds)
	assert.Equal(t, "50", account.Principal().String())
	uow.AssertNotCalled(t, "AssetLedger")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestWithdrawStakeCommandHandler_Handle_NeverStaked(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewWithdrawStakeCommand(owner, kernel.NewAmount(1))

	repo := new(MockStakeAccountRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StakeAccountRepository").Return(repo).Once()
	repo.On("Get", ctx, owner).Return(nil, notFound()).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewWithdrawStakeCommandHandler(stakeFactory{uow}, &recordingLocker{}, fixedClock{now}, stakingEngine)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInsufficientFunds)
}
