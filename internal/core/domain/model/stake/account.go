package stake

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account was not created through
// NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the staking record of a single owner.
//
// Account follows these invariants:
//   - principal never goes below zero
//   - rewards are settled against the current principal before it changes
//   - lastAccrualTime only moves forward
type Account struct {
	kernel.EventRecorder

	owner           kernel.Address
	principal       kernel.Amount
	accruedRewards  kernel.Amount
	rewardRemainder kernel.Amount
	lastAccrualTime time.Time

	guard guard.ConstructorGuard
}

// NewAccount returns an empty account for owner. The accrual window starts
// with the first deposit.
func NewAccount(owner kernel.Address) (*Account, error) {
	if err := owner.Validate(); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	return &Account{
		owner: owner,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an Account from persistence without recording events.
func RestoreAccount(
	owner kernel.Address,
	principal kernel.Amount,
	accruedRewards kernel.Amount,
	rewardRemainder kernel.Amount,
	lastAccrualTime time.Time,
) (*Account, error) {
	a, err := NewAccount(owner)
	if err != nil {
		return nil, err
	}
	a.principal = principal
	a.accruedRewards = accruedRewards
	a.rewardRemainder = rewardRemainder
	a.lastAccrualTime = lastAccrualTime
	return a, nil
}

// Validate ensures the Account was created through NewAccount or RestoreAccount.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) Owner() kernel.Address         { return a.owner }
func (a *Account) Principal() kernel.Amount      { return a.principal }
func (a *Account) AccruedRewards() kernel.Amount { return a.accruedRewards }
func (a *Account) LastAccrualTime() time.Time    { return a.lastAccrualTime }

// RewardRemainder is the reward earned below one smallest unit, in the scaled
// units of the policy that produced it.
func (a *Account) RewardRemainder() kernel.Amount { return a.rewardRemainder }

// PendingReward previews what Claim would pay at now without changing the account.
func (a *Account) PendingReward(now time.Time, policy RewardPolicy) (kernel.Amount, error) {
	delta, _, err := a.accrual(now, policy)
	if err != nil {
		return kernel.Amount{}, err
	}
	return a.accruedRewards.Add(delta)
}

// Settle folds the reward earned since lastAccrualTime into accruedRewards,
// keeps the part below one unit as rewardRemainder and moves lastAccrualTime
// to now. A clock reading earlier than lastAccrualTime earns nothing and
// leaves lastAccrualTime untouched.
func (a *Account) Settle(now time.Time, policy RewardPolicy) error {
	delta, remainder, err := a.accrual(now, policy)
	if err != nil {
		return err
	}
	accrued, err := a.accruedRewards.Add(delta)
	if err != nil {
		return err
	}

	a.accruedRewards = accrued
	a.rewardRemainder = remainder
	if now.After(a.lastAccrualTime) {
		a.lastAccrualTime = now
	}
	return nil
}

// Deposit settles pending rewards and then adds amount to the principal.
// The caller must pull amount into the engine's custody in the same transaction.
func (a *Account) Deposit(amount kernel.Amount, now time.Time, policy RewardPolicy) error {
	if amount.IsZero() {
		return errs.NewInvalidAmountError("amount")
	}
	principal, err := a.principal.Add(amount)
	if err != nil {
		return err
	}
	if err := a.Settle(now, policy); err != nil {
		return err
	}

	a.principal = principal
	a.Record(StakedEvent{
		eventHeader: eventHeader{id: kernel.NewUUID(), at: now},
		Owner:       a.owner.String(),
		Amount:      amount.String(),
		Principal:   principal.String(),
		Timestamp:   now,
	})
	return nil
}

// Withdraw settles pending rewards and then removes amount from the principal.
// The caller must push amount back to the owner in the same transaction.
func (a *Account) Withdraw(amount kernel.Amount, now time.Time, policy RewardPolicy) error {
	if amount.IsZero() {
		return errs.NewInvalidAmountError("amount")
	}
	principal, err := a.principal.Sub(amount)
	if err != nil {
		return err
	}
	if err := a.Settle(now, policy); err != nil {
		return err
	}

	a.principal = principal
	a.Record(WithdrawnEvent{
		eventHeader: eventHeader{id: kernel.NewUUID(), at: now},
		Owner:       a.owner.String(),
		Amount:      amount.String(),
		Principal:   principal.String(),
		Timestamp:   now,
	})
	return nil
}

// Claim settles pending rewards and returns them as the payout, resetting
// accruedRewards to zero. A zero payout is not an error and records no event.
func (a *Account) Claim(now time.Time, policy RewardPolicy) (kernel.Amount, error) {
	if err := a.Settle(now, policy); err != nil {
		return kernel.Amount{}, err
	}

	payout := a.accruedRewards
	a.accruedRewards = kernel.ZeroAmount()
	if payout.IsZero() {
		return payout, nil
	}

	a.Record(RewardPaidEvent{
		eventHeader: eventHeader{id: kernel.NewUUID(), at: now},
		Owner:       a.owner.String(),
		Amount:      payout.String(),
		Timestamp:   now,
	})
	return payout, nil
}

func (a *Account) accrual(now time.Time, policy RewardPolicy) (kernel.Amount, kernel.Amount, error) {
	if policy == nil {
		return kernel.Amount{}, kernel.Amount{}, errs.NewValueIsRequiredError("reward policy")
	}
	if a.principal.IsZero() || !now.After(a.lastAccrualTime) {
		return kernel.ZeroAmount(), a.rewardRemainder, nil
	}
	return policy.Accrue(a.principal, now.Sub(a.lastAccrualTime), a.rewardRemainder)
}
