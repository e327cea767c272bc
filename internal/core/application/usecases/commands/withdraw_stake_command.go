package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrWithdrawStakeCommandIsNotConstructed = errors.New(
	"WithdrawStakeCommand must be created via NewWithdrawStakeCommand constructor",
)

// WithdrawStakeCommand returns amount of the owner's principal.
type WithdrawStakeCommand struct { //nolint:recvcheck //using for validation
	owner  kernel.Address
	amount kernel.Amount

	guard guard.ConstructorGuard
}

func NewWithdrawStakeCommand(owner kernel.Address, amount kernel.Amount) (WithdrawStakeCommand, error) {
	if err := errors.Join(validateOwner(owner), validatePositive(amount)); err != nil {
		return WithdrawStakeCommand{}, err
	}
	return WithdrawStakeCommand{
		owner:  owner,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c WithdrawStakeCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawStakeCommandIsNotConstructed)
}

func (c WithdrawStakeCommand) Owner() kernel.Address { return c.owner }
func (c WithdrawStakeCommand) Amount() kernel.Amount { return c.amount }
