package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrApproveTokensCommandIsNotConstructed = errors.New(
	"ApproveTokensCommand must be created via NewApproveTokensCommand constructor",
)

// ApproveTokensCommand sets the allowance spender may draw from owner.
// A zero amount revokes the allowance.
type ApproveTokensCommand struct { //nolint:recvcheck //using for validation
	owner   kernel.Address
	spender kernel.Address
	amount  kernel.Amount

	guard guard.ConstructorGuard
}

func NewApproveTokensCommand(owner, spender kernel.Address, amount kernel.Amount) (ApproveTokensCommand, error) {
	var spenderErr error
	if err := spender.Validate(); err != nil {
		spenderErr = fmt.Errorf("spender: %w", err)
	}
	if err := errors.Join(validateOwner(owner), spenderErr); err != nil {
		return ApproveTokensCommand{}, err
	}
	return ApproveTokensCommand{
		owner:   owner,
		spender: spender,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveTokensCommand) Validate() error {
	return c.guard.Validate(ErrApproveTokensCommandIsNotConstructed)
}

func (c ApproveTokensCommand) Owner() kernel.Address   { return c.owner }
func (c ApproveTokensCommand) Spender() kernel.Address { return c.spender }
func (c ApproveTokensCommand) Amount() kernel.Amount   { return c.amount }
