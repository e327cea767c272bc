package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteShipmentCommandIsNotConstructed = errors.New(
	"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
)

// CompleteShipmentCommand confirms delivery of the shipment (sender, index) and
// releases its escrow to the sender.
type CompleteShipmentCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Address
	sender kernel.Address
	index  uint64

	guard guard.ConstructorGuard
}

func NewCompleteShipmentCommand(caller, sender kernel.Address, index uint64) (CompleteShipmentCommand, error) {
	if err := errors.Join(validateCaller(caller), validateSender(sender)); err != nil {
		return CompleteShipmentCommand{}, err
	}
	return CompleteShipmentCommand{
		caller: caller,
		sender: sender,
		index:  index,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

func (c CompleteShipmentCommand) Caller() kernel.Address { return c.caller }
func (c CompleteShipmentCommand) Sender() kernel.Address { return c.sender }
func (c CompleteShipmentCommand) Index() uint64          { return c.index }
