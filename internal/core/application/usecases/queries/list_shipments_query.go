package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// MaxPageSize bounds list reads.
const MaxPageSize = 500

var (
	ErrGetSenderShipmentsQueryIsNotConstructed = errors.New(
		"GetSenderShipmentsQuery must be created via NewGetSenderShipmentsQuery constructor",
	)
	ErrGetReceiverShipmentsQueryIsNotConstructed = errors.New(
		"GetReceiverShipmentsQuery must be created via NewGetReceiverShipmentsQuery constructor",
	)
)

// GetSenderShipmentsQuery lists a sender's shipments in index order.
type GetSenderShipmentsQuery struct {
	sender kernel.Address
	page   ports.Page

	guard guard.ConstructorGuard
}

func NewGetSenderShipmentsQuery(sender kernel.Address, offset, limit int) (GetSenderShipmentsQuery, error) {
	page, err := newPage(offset, limit)
	if err = errors.Join(sender.Validate(), err); err != nil {
		return GetSenderShipmentsQuery{}, err
	}
	return GetSenderShipmentsQuery{sender: sender, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSenderShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetSenderShipmentsQueryIsNotConstructed)
}

// GetReceiverShipmentsQuery lists the shipments addressed to a receiver in the
// order they were created.
type GetReceiverShipmentsQuery struct {
	receiver kernel.Address
	page     ports.Page

	guard guard.ConstructorGuard
}

func NewGetReceiverShipmentsQuery(receiver kernel.Address, offset, limit int) (GetReceiverShipmentsQuery, error) {
	page, err := newPage(offset, limit)
	if err = errors.Join(receiver.Validate(), err); err != nil {
		return GetReceiverShipmentsQuery{}, err
	}
	return GetReceiverShipmentsQuery{receiver: receiver, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReceiverShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiverShipmentsQueryIsNotConstructed)
}

// newPage defaults a zero limit to MaxPageSize.
func newPage(offset, limit int) (ports.Page, error) {
	if offset < 0 {
		return ports.Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	if limit < 0 || limit > MaxPageSize {
		return ports.Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxPageSize)
	}
	if limit == 0 {
		limit = MaxPageSize
	}
	return ports.Page{Offset: offset, Limit: limit}, nil
}
