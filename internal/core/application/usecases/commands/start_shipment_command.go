package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStartShipmentCommandIsNotConstructed = errors.New(
	"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
)

// StartShipmentCommand hands the shipment (sender, index) over for transport.
type StartShipmentCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Address
	sender kernel.Address
	index  uint64

	guard guard.ConstructorGuard
}

func NewStartShipmentCommand(caller, sender kernel.Address, index uint64) (StartShipmentCommand, error) {
	if err := errors.Join(validateCaller(caller), validateSender(sender)); err != nil {
		return StartShipmentCommand{}, err
	}
	return StartShipmentCommand{
		caller: caller,
		sender: sender,
		index:  index,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}

func (c StartShipmentCommand) Caller() kernel.Address { return c.caller }
func (c StartShipmentCommand) Sender() kernel.Address { return c.sender }
func (c StartShipmentCommand) Index() uint64          { return c.index }

func validateCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return fmt.Errorf("caller: %w", err)
	}
	return nil
}

func validateSender(sender kernel.Address) error {
	if err := sender.Validate(); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	return nil
}
