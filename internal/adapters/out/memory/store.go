package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	_ ports.ShipmentReader     = (*Store)(nil)
	_ ports.StakeAccountReader = (*Store)(nil)
	_ ports.BalanceReader      = (*Store)(nil)
)

type shipmentRecord struct {
	sender       kernel.Address
	index        uint64
	receiver     kernel.Address
	attrs        shipment.Attributes
	price        kernel.Amount
	status       shipment.Status
	createdAt    time.Time
	deliveryTime time.Time
}

func recordOf(s *shipment.Shipment) shipmentRecord {
	return shipmentRecord{
		sender:       s.Sender(),
		index:        s.Index(),
		receiver:     s.Receiver(),
		attrs:        s.Attributes(),
		price:        s.Price(),
		status:       s.Status(),
		createdAt:    s.CreatedAt(),
		deliveryTime: s.DeliveryTime(),
	}
}

func (r shipmentRecord) restore() (*shipment.Shipment, error) {
	return shipment.RestoreShipment(r.sender, r.index, r.receiver, r.attrs, r.price, r.status, r.createdAt, r.deliveryTime)
}

type shipmentRef struct {
	sender kernel.Address
	index  uint64
}

type accountRecord struct {
	principal       kernel.Amount
	accruedRewards  kernel.Amount
	rewardRemainder kernel.Amount
	lastAccrualTime time.Time
}

type allowanceKey struct {
	owner   kernel.Address
	spender kernel.Address
}

type outboxEntry struct {
	msg         ports.OutboxMessage
	publishedAt time.Time
}

// Store is the committed state shared by all units of work created from it.
type Store struct {
	mu sync.RWMutex

	custodian kernel.Address

	shipments     map[kernel.Address][]shipmentRecord
	receiverIndex map[kernel.Address][]shipmentRef
	accounts      map[kernel.Address]accountRecord
	native        map[kernel.Address]kernel.Amount
	tokens        map[kernel.Address]kernel.Amount
	allowances    map[allowanceKey]kernel.Amount
	outbox        []outboxEntry
}

// NewStore returns an empty store whose escrow custody account is custodian.
func NewStore(custodian kernel.Address) *Store {
	return &Store{
		custodian:     custodian,
		shipments:     make(map[kernel.Address][]shipmentRecord),
		receiverIndex: make(map[kernel.Address][]shipmentRef),
		accounts:      make(map[kernel.Address]accountRecord),
		native:        make(map[kernel.Address]kernel.Amount),
		tokens:        make(map[kernel.Address]kernel.Amount),
		allowances:    make(map[allowanceKey]kernel.Amount),
	}
}

// MintGenesis credits supply tokens to treasury if no token has been issued yet.
// It reports whether the mint happened.
func (s *Store) MintGenesis(_ context.Context, treasury kernel.Address, supply kernel.Amount) (bool, error) {
	if err := treasury.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tokens) > 0 || supply.IsZero() {
		return false, nil
	}
	s.tokens[treasury] = supply
	return true, nil
}

func (s *Store) GetShipment(_ context.Context, sender kernel.Address, index uint64) (*shipment.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq := s.shipments[sender]
	if index >= uint64(len(seq)) {
		return nil, errs.NewObjectNotFoundError("shipment", shipment.Key(sender, index))
	}
	return seq[index].restore()
}

func (s *Store) ListBySender(_ context.Context, sender kernel.Address, page ports.Page) ([]*shipment.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return restoreAll(paginate(s.shipments[sender], page))
}

func (s *Store) CountBySender(_ context.Context, sender kernel.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint64(len(s.shipments[sender])), nil
}

func (s *Store) ListByReceiver(_ context.Context, receiver kernel.Address, page ports.Page) ([]*shipment.Shipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := paginate(s.receiverIndex[receiver], page)
	records := make([]shipmentRecord, 0, len(refs))
	for _, ref := range refs {
		seq := s.shipments[ref.sender]
		if ref.index >= uint64(len(seq)) {
			return nil, fmt.Errorf("receiver index references missing shipment %s", shipment.Key(ref.sender, ref.index))
		}
		records = append(records, seq[ref.index])
	}
	return restoreAll(records)
}

func (s *Store) CountByReceiver(_ context.Context, receiver kernel.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint64(len(s.receiverIndex[receiver])), nil
}

func (s *Store) StatsBySender(_ context.Context, sender kernel.Address) (ports.ShipmentStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats ports.ShipmentStats
	for _, r := range s.shipments[sender] {
		stats.Total++
		switch r.status {
		case shipment.Pending:
			stats.Pending++
		case shipment.InTransit:
			stats.InTransit++
		case shipment.Delivered:
			stats.Delivered++
		}
	}
	return stats, nil
}

func (s *Store) GetAccount(_ context.Context, owner kernel.Address) (*stake.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.accounts[owner]
	if !ok {
		return nil, errs.NewObjectNotFoundError("stake account", owner.String())
	}
	return stake.RestoreAccount(owner, r.principal, r.accruedRewards, r.rewardRemainder, r.lastAccrualTime)
}

func (s *Store) NativeBalanceOf(_ context.Context, account kernel.Address) (kernel.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.native[account], nil
}

func (s *Store) TokenBalanceOf(_ context.Context, owner kernel.Address) (kernel.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens[owner], nil
}

func (s *Store) TokenAllowance(_ context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allowances[allowanceKey{owner: owner, spender: spender}], nil
}

// PendingOutbox reports how many notifications await publication.
func (s *Store) PendingOutbox() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, e := range s.outbox {
		if e.publishedAt.IsZero() {
			n++
		}
	}
	return n
}

func paginate[T any](items []T, page ports.Page) []T {
	if page.Offset >= len(items) {
		return nil
	}
	items = items[page.Offset:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}

func restoreAll(records []shipmentRecord) ([]*shipment.Shipment, error) {
	out := make([]*shipment.Shipment, 0, len(records))
	for _, r := range records {
		s, err := r.restore()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
