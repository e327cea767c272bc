package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrStakeCommandIsNotConstructed = errors.New(
	"StakeCommand must be created via NewStakeCommand constructor",
)

// StakeCommand deposits amount of the owner's tokens with the staking engine.
// The owner must have approved the engine for at least amount beforehand.
type StakeCommand struct { //nolint:recvcheck //using for validation
	owner  kernel.Address
	amount kernel.Amount

	guard guard.ConstructorGuard
}

func NewStakeCommand(owner kernel.Address, amount kernel.Amount) (StakeCommand, error) {
	if err := errors.Join(validateOwner(owner), validatePositive(amount)); err != nil {
		return StakeCommand{}, err
	}
	return StakeCommand{
		owner:  owner,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c StakeCommand) Validate() error {
	return c.guard.Validate(ErrStakeCommandIsNotConstructed)
}

func (c StakeCommand) Owner() kernel.Address { return c.owner }
func (c StakeCommand) Amount() kernel.Amount { return c.amount }

func validateOwner(owner kernel.Address) error {
	if err := owner.Validate(); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	return nil
}

func validatePositive(amount kernel.Amount) error {
	if amount.IsZero() {
		return errs.NewInvalidAmountError("amount")
	}
	return nil
}
