package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetSenderCountQueryIsNotConstructed = errors.New(
		"GetSenderCountQuery must be created via NewGetSenderCountQuery constructor",
	)
	ErrGetReceiverCountQueryIsNotConstructed = errors.New(
		"GetReceiverCountQuery must be created via NewGetReceiverCountQuery constructor",
	)
)

// GetSenderCountQuery reads the length of a sender's shipment sequence.
type GetSenderCountQuery struct {
	sender kernel.Address

	guard guard.ConstructorGuard
}

func NewGetSenderCountQuery(sender kernel.Address) (GetSenderCountQuery, error) {
	if err := sender.Validate(); err != nil {
		return GetSenderCountQuery{}, err
	}
	return GetSenderCountQuery{sender: sender, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSenderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetSenderCountQueryIsNotConstructed)
}

// GetReceiverCountQuery reads the length of a receiver's index.
type GetReceiverCountQuery struct {
	receiver kernel.Address

	guard guard.ConstructorGuard
}

func NewGetReceiverCountQuery(receiver kernel.Address) (GetReceiverCountQuery, error) {
	if err := receiver.Validate(); err != nil {
		return GetReceiverCountQuery{}, err
	}
	return GetReceiverCountQuery{receiver: receiver, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReceiverCountQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiverCountQueryIsNotConstructed)
}
