package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	// ErrNoActiveTransaction is returned when a unit of work is used outside Begin/Commit.
	ErrNoActiveTransaction = errors.New("no active transaction")
	// ErrWriteConflict is returned by Commit when another unit of work took the
	// same shipment index first.
	ErrWriteConflict = fmt.Errorf("%w: write conflict", errs.ErrConcurrentUpdate)
)

// UnitOfWorkFactory creates units of work over a shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes against a Store until Commit.
type UnitOfWork struct {
	store   *Store
	tx      *staged
	tracked []kernel.AggregateRoot
}

type staged struct {
	appended map[kernel.Address][]shipmentRecord
	updated  map[shipmentRef]shipmentRecord
	refs     map[kernel.Address][]shipmentRef
	accounts map[kernel.Address]accountRecord

	nativeCredits map[kernel.Address]kernel.Amount
	nativeDebits  map[kernel.Address]kernel.Amount
	tokenCredits  map[kernel.Address]kernel.Amount
	tokenDebits   map[kernel.Address]kernel.Amount

	allowanceSet   map[allowanceKey]kernel.Amount
	allowanceSpent map[allowanceKey]kernel.Amount

	outbox    []ports.OutboxMessage
	published map[kernel.UUID]time.Time
}

func newStaged() *staged {
	return &staged{
		appended:       make(map[kernel.Address][]shipmentRecord),
		updated:        make(map[shipmentRef]shipmentRecord),
		refs:           make(map[kernel.Address][]shipmentRef),
		accounts:       make(map[kernel.Address]accountRecord),
		nativeCredits:  make(map[kernel.Address]kernel.Amount),
		nativeDebits:   make(map[kernel.Address]kernel.Amount),
		tokenCredits:   make(map[kernel.Address]kernel.Amount),
		tokenDebits:    make(map[kernel.Address]kernel.Amount),
		allowanceSet:   make(map[allowanceKey]kernel.Amount),
		allowanceSpent: make(map[allowanceKey]kernel.Amount),
		published:      make(map[kernel.UUID]time.Time),
	}
}

// Begin starts staging. Calling Begin twice keeps the current transaction.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.tx == nil {
		u.tx = newStaged()
		u.tracked = nil
	}
	return nil
}

// Commit writes the tracked aggregates' events to the outbox, validates the
// staged writes and applies them atomically.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	tx := u.tx
	u.tx = nil

	for _, a := range u.tracked {
		for _, e := range a.DomainEvents() {
			msg, err := ports.NewOutboxMessage(e)
			if err != nil {
				return err
			}
			tx.outbox = append(tx.outbox, msg)
		}
	}

	if err := u.store.apply(tx); err != nil {
		return err
	}

	for _, a := range u.tracked {
		a.ClearDomainEvents()
	}
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	u.tx = nil
	u.tracked = nil
	return nil
}

func (u *UnitOfWork) TrackAggregate(aggregate kernel.AggregateRoot) {
	u.tracked = append(u.tracked, aggregate)
}

func (u *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentRepository{uow: u}
}

func (u *UnitOfWork) StakeAccountRepository() ports.StakeAccountRepository {
	return stakeAccountRepository{uow: u}
}

func (u *UnitOfWork) EscrowVault() ports.EscrowVault {
	return escrowVault{uow: u}
}

func (u *UnitOfWork) AssetLedger() ports.AssetLedger {
	return assetLedger{uow: u}
}

func (u *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxRepository{uow: u}
}

func (u *UnitOfWork) active() (*staged, error) {
	if u.tx == nil {
		return nil, ErrNoActiveTransaction
	}
	return u.tx, nil
}

// apply validates tx against the committed state and applies it. Nothing is
// applied when validation fails.
func (s *Store) apply(tx *staged) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sender, recs := range tx.appended {
		next := uint64(len(s.shipments[sender]))
		if recs[0].index != next {
			return fmt.Errorf("%w: shipment %s already exists", ErrWriteConflict, shipment.Key(sender, recs[0].index))
		}
	}

	native, err := settleBalances(s.native, tx.nativeCredits, tx.nativeDebits)
	if err != nil {
		return err
	}
	tokens, err := settleBalances(s.tokens, tx.tokenCredits, tx.tokenDebits)
	if err != nil {
		return err
	}
	allowances := make(map[allowanceKey]kernel.Amount, len(tx.allowanceSet)+len(tx.allowanceSpent))
	for k, v := range tx.allowanceSet {
		allowances[k] = v
	}
	for k, spent := range tx.allowanceSpent {
		base, ok := allowances[k]
		if !ok {
			base = s.allowances[k]
		}
		left, subErr := base.Sub(spent)
		if subErr != nil {
			return errs.NewTransferFailedError(k.owner.String(), k.spender.String(), spent, subErr)
		}
		allowances[k] = left
	}

	for sender, recs := range tx.appended {
		s.shipments[sender] = append(s.shipments[sender], recs...)
	}
	for ref, rec := range tx.updated {
		seq := s.shipments[ref.sender]
		if ref.index < uint64(len(seq)) {
			seq[ref.index] = rec
		}
	}
	for receiver, refs := range tx.refs {
		s.receiverIndex[receiver] = append(s.receiverIndex[receiver], refs...)
	}
	for owner, rec := range tx.accounts {
		s.accounts[owner] = rec
	}
	for k, v := range native {
		s.native[k] = v
	}
	for k, v := range tokens {
		s.tokens[k] = v
	}
	for k, v := range allowances {
		s.allowances[k] = v
	}
	for _, msg := range tx.outbox {
		s.outbox = append(s.outbox, outboxEntry{msg: msg})
	}
	if len(tx.published) > 0 {
		for i := range s.outbox {
			if at, ok := tx.published[s.outbox[i].msg.ID]; ok && s.outbox[i].publishedAt.IsZero() {
				s.outbox[i].publishedAt = at
			}
		}
	}
	return nil
}

// settleBalances computes the new balance of every touched account and fails
// with errs.ErrTransferFailed if any would become negative.
func settleBalances(
	committed, credits, debits map[kernel.Address]kernel.Amount,
) (map[kernel.Address]kernel.Amount, error) {
	out := make(map[kernel.Address]kernel.Amount, len(credits)+len(debits))
	touched := make(map[kernel.Address]struct{}, len(credits)+len(debits))
	for k := range credits {
		touched[k] = struct{}{}
	}
	for k := range debits {
		touched[k] = struct{}{}
	}

	for k := range touched {
		withCredit, err := committed[k].Add(credits[k])
		if err != nil {
			return nil, err
		}
		balance, err := withCredit.Sub(debits[k])
		if err != nil {
			return nil, errs.NewTransferFailedError(k.String(), "", debits[k], err)
		}
		out[k] = balance
	}
	return out, nil
}

// view returns committed + staged credits - staged debits for account.
func (u *UnitOfWork) view(
	committed map[kernel.Address]kernel.Amount,
	credits, debits map[kernel.Address]kernel.Amount,
	account kernel.Address,
) (kernel.Amount, error) {
	u.store.mu.RLock()
	base := committed[account]
	u.store.mu.RUnlock()

	withCredit, err := base.Add(credits[account])
	if err != nil {
		return kernel.Amount{}, err
	}
	return withCredit.Sub(debits[account])
}

func addTo(m map[kernel.Address]kernel.Amount, k kernel.Address, amount kernel.Amount) error {
	v, err := m[k].Add(amount)
	if err != nil {
		return err
	}
	m[k] = v
	return nil
}

type shipmentRepository struct{ uow *UnitOfWork }

func (r shipmentRepository) NextIndex(_ context.Context, sender kernel.Address) (uint64, error) {
	tx, err := r.uow.active()
	if err != nil {
		return 0, err
	}
	r.uow.store.mu.RLock()
	n := uint64(len(r.uow.store.shipments[sender]))
	r.uow.store.mu.RUnlock()
	return n + uint64(len(tx.appended[sender])), nil
}

func (r shipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	next, err := r.NextIndex(ctx, aggregate.Sender())
	if err != nil {
		return err
	}
	if aggregate.Index() != next {
		return fmt.Errorf("%w: next index for %s is %d, got %d",
			ErrWriteConflict, aggregate.Sender(), next, aggregate.Index())
	}

	tx := r.uow.tx
	tx.appended[aggregate.Sender()] = append(tx.appended[aggregate.Sender()], recordOf(aggregate))
	tx.refs[aggregate.Receiver()] = append(tx.refs[aggregate.Receiver()],
		shipmentRef{sender: aggregate.Sender(), index: aggregate.Index()})
	return nil
}

func (r shipmentRepository) Update(_ context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	tx, err := r.uow.active()
	if err != nil {
		return err
	}

	rec := recordOf(aggregate)
	if pending := tx.appended[aggregate.Sender()]; len(pending) > 0 && aggregate.Index() >= pending[0].index {
		offset := aggregate.Index() - pending[0].index
		if offset >= uint64(len(pending)) {
			return errs.NewObjectNotFoundError("shipment", aggregate.Key())
		}
		pending[offset] = rec
		return nil
	}

	r.uow.store.mu.RLock()
	exists := aggregate.Index() < uint64(len(r.uow.store.shipments[aggregate.Sender()]))
	r.uow.store.mu.RUnlock()
	if !exists {
		return errs.NewObjectNotFoundError("shipment", aggregate.Key())
	}

	tx.updated[shipmentRef{sender: aggregate.Sender(), index: aggregate.Index()}] = rec
	return nil
}

func (r shipmentRepository) Get(_ context.Context, sender kernel.Address, index uint64) (*shipment.Shipment, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	if rec, ok := tx.updated[shipmentRef{sender: sender, index: index}]; ok {
		return rec.restore()
	}

	r.uow.store.mu.RLock()
	seq := r.uow.store.shipments[sender]
	committed := uint64(len(seq))
	var rec shipmentRecord
	if index < committed {
		rec = seq[index]
	}
	r.uow.store.mu.RUnlock()

	if index < committed {
		return rec.restore()
	}
	if pending := tx.appended[sender]; index-committed < uint64(len(pending)) {
		return pending[index-committed].restore()
	}
	return nil, errs.NewObjectNotFoundError("shipment", shipment.Key(sender, index))
}

type stakeAccountRepository struct{ uow *UnitOfWork }

func (r stakeAccountRepository) Get(_ context.Context, owner kernel.Address) (*stake.Account, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	rec, ok := tx.accounts[owner]
	if !ok {
		r.uow.store.mu.RLock()
		rec, ok = r.uow.store.accounts[owner]
		r.uow.store.mu.RUnlock()
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("stake account", owner.String())
	}
	return stake.RestoreAccount(owner, rec.principal, rec.accruedRewards, rec.rewardRemainder, rec.lastAccrualTime)
}

func (r stakeAccountRepository) Save(_ context.Context, aggregate *stake.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	tx.accounts[aggregate.Owner()] = accountRecord{
		principal:       aggregate.Principal(),
		accruedRewards:  aggregate.AccruedRewards(),
		rewardRemainder: aggregate.RewardRemainder(),
		lastAccrualTime: aggregate.LastAccrualTime(),
	}
	return nil
}

type escrowVault struct{ uow *UnitOfWork }

func (v escrowVault) Custodian() kernel.Address { return v.uow.store.custodian }

func (v escrowVault) Deposit(_ context.Context, amount kernel.Amount) error {
	tx, err := v.uow.active()
	if err != nil {
		return err
	}
	return addTo(tx.nativeCredits, v.uow.store.custodian, amount)
}

func (v escrowVault) Release(ctx context.Context, to kernel.Address, amount kernel.Amount) error {
	tx, err := v.uow.active()
	if err != nil {
		return err
	}
	custodian := v.uow.store.custodian

	held, err := v.BalanceOf(ctx, custodian)
	if err != nil {
		return errs.NewTransferFailedError(custodian.String(), to.String(), amount, err)
	}
	if held.LessThan(amount) {
		return errs.NewTransferFailedError(custodian.String(), to.String(), amount,
			errs.NewInsufficientFundsError(amount, held))
	}

	if err = addTo(tx.nativeDebits, custodian, amount); err != nil {
		return err
	}
	return addTo(tx.nativeCredits, to, amount)
}

func (v escrowVault) BalanceOf(_ context.Context, account kernel.Address) (kernel.Amount, error) {
	tx, err := v.uow.active()
	if err != nil {
		return kernel.Amount{}, err
	}
	return v.uow.view(v.uow.store.native, tx.nativeCredits, tx.nativeDebits, account)
}

type assetLedger struct{ uow *UnitOfWork }

func (l assetLedger) BalanceOf(_ context.Context, owner kernel.Address) (kernel.Amount, error) {
	tx, err := l.uow.active()
	if err != nil {
		return kernel.Amount{}, err
	}
	return l.uow.view(l.uow.store.tokens, tx.tokenCredits, tx.tokenDebits, owner)
}

// LockBalances reads like BalanceOf. Commit rejects the unit of work if a
// concurrent commit spent one of the balances in the meantime.
func (l assetLedger) LockBalances(ctx context.Context, accounts ...kernel.Address) (map[kernel.Address]kernel.Amount, error) {
	out := make(map[kernel.Address]kernel.Amount, len(accounts))
	for _, a := range accounts {
		balance, err := l.BalanceOf(ctx, a)
		if err != nil {
			return nil, err
		}
		out[a] = balance
	}
	return out, nil
}

func (l assetLedger) Transfer(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error {
	tx, err := l.uow.active()
	if err != nil {
		return err
	}

	balance, err := l.BalanceOf(ctx, from)
	if err != nil {
		return errs.NewTransferFailedError(from.String(), to.String(), amount, err)
	}
	if balance.LessThan(amount) {
		return errs.NewTransferFailedError(from.String(), to.String(), amount,
			errs.NewInsufficientFundsError(amount, balance))
	}

	if err = addTo(tx.tokenDebits, from, amount); err != nil {
		return err
	}
	return addTo(tx.tokenCredits, to, amount)
}

func (l assetLedger) TransferFrom(ctx context.Context, spender, owner, to kernel.Address, amount kernel.Amount) error {
	tx, err := l.uow.active()
	if err != nil {
		return err
	}

	allowance, err := l.Allowance(ctx, owner, spender)
	if err != nil {
		return err
	}
	if allowance.LessThan(amount) {
		return errs.NewTransferFailedError(owner.String(), to.String(), amount,
			fmt.Errorf("allowance of %s is %s", spender, allowance))
	}

	if err = l.Transfer(ctx, owner, to, amount); err != nil {
		return err
	}

	key := allowanceKey{owner: owner, spender: spender}
	spent, err := tx.allowanceSpent[key].Add(amount)
	if err != nil {
		return err
	}
	tx.allowanceSpent[key] = spent
	return nil
}

// Approve replaces the allowance. Spending staged earlier in the same unit of
// work is applied before the new value takes effect.
func (l assetLedger) Approve(_ context.Context, owner, spender kernel.Address, amount kernel.Amount) error {
	tx, err := l.uow.active()
	if err != nil {
		return err
	}
	key := allowanceKey{owner: owner, spender: spender}
	delete(tx.allowanceSpent, key)
	tx.allowanceSet[key] = amount
	return nil
}

func (l assetLedger) Allowance(_ context.Context, owner, spender kernel.Address) (kernel.Amount, error) {
	tx, err := l.uow.active()
	if err != nil {
		return kernel.Amount{}, err
	}
	key := allowanceKey{owner: owner, spender: spender}

	base, ok := tx.allowanceSet[key]
	if !ok {
		l.uow.store.mu.RLock()
		base = l.uow.store.allowances[key]
		l.uow.store.mu.RUnlock()
	}
	return base.Sub(tx.allowanceSpent[key])
}

type outboxRepository struct{ uow *UnitOfWork }

func (r outboxRepository) Append(_ context.Context, msgs ...ports.OutboxMessage) error {
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	tx.outbox = append(tx.outbox, msgs...)
	return nil
}

func (r outboxRepository) FetchUnpublished(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	out := make([]ports.OutboxMessage, 0, limit)
	for _, e := range r.uow.store.outbox {
		if len(out) == limit {
			break
		}
		if !e.publishedAt.IsZero() {
			continue
		}
		if _, marked := tx.published[e.msg.ID]; marked {
			continue
		}
		out = append(out, e.msg)
	}
	return out, nil
}

func (r outboxRepository) MarkPublished(_ context.Context, ids []kernel.UUID, at time.Time) error {
	tx, err := r.uow.active()
	if err != nil {
		return err
	}
	for _, id := range ids {
		tx.published[id] = at
	}
	return nil
}
