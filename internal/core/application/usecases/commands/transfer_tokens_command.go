package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrTransferTokensCommandIsNotConstructed = errors.New(
	"TransferTokensCommand must be created via NewTransferTokensCommand constructor",
)

// TransferTokensCommand moves tokens between accounts. Sending tokens to the
// staking engine's address funds its reward pool.
type TransferTokensCommand struct { //nolint:recvcheck //using for validation
	from   kernel.Address
	to     kernel.Address
	amount kernel.Amount

	guard guard.ConstructorGuard
}

func NewTransferTokensCommand(from, to kernel.Address, amount kernel.Amount) (TransferTokensCommand, error) {
	var fromErr, toErr error
	if err := from.Validate(); err != nil {
		fromErr = fmt.Errorf("from: %w", err)
	}
	if err := to.Validate(); err != nil {
		toErr = fmt.Errorf("to: %w", err)
	}
	if err := errors.Join(fromErr, toErr, validatePositive(amount)); err != nil {
		return TransferTokensCommand{}, err
	}
	return TransferTokensCommand{
		from:   from,
		to:     to,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c TransferTokensCommand) Validate() error {
	return c.guard.Validate(ErrTransferTokensCommandIsNotConstructed)
}

func (c TransferTokensCommand) From() kernel.Address  { return c.from }
func (c TransferTokensCommand) To() kernel.Address    { return c.to }
func (c TransferTokensCommand) Amount() kernel.Amount { return c.amount }
