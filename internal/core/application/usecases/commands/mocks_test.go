package commands_test

import (
	"context"
	"sync"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var (
	sender   = kernel.MustParseAddress("0x1000000000000000000000000000000000000001")
	receiver = kernel.MustParseAddress("0x2000000000000000000000000000000000000002")
	owner    = kernel.MustParseAddress("0x4000000000000000000000000000000000000004")
	engine   = kernel.MustParseAddress("0x5000000000000000000000000000000000000005")
	custody  = kernel.MustParseAddress("0x6000000000000000000000000000000000000006")
	now      = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type recordingLocker struct {
	mu   sync.Mutex
	keys []string
	held int
}

func (l *recordingLocker) Lock(keys ...string) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, keys...)
	l.held++
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held--
	}
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) NextIndex(ctx context.Context, s kernel.Address) (uint64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(uint64), args.Error(1)
}
func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, s kernel.Address, index uint64) (*shipment.Shipment, error) {
	args := m.Called(ctx, s, index)
	if v := args.Get(0); v != nil {
		return v.(*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStakeAccountRepository struct{ mock.Mock }

func (m *MockStakeAccountRepository) Get(ctx context.Context, o kernel.Address) (*stake.Account, error) {
	args := m.Called(ctx, o)
	if v := args.Get(0); v != nil {
		return v.(*stake.Account), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockStakeAccountRepository) Save(ctx context.Context, a *stake.Account) error {
	return m.Called(ctx, a).Error(0)
}

type MockEscrowVault struct{ mock.Mock }

func (m *MockEscrowVault) Custodian() kernel.Address { return custody }
func (m *MockEscrowVault) Deposit(ctx context.Context, amount kernel.Amount) error {
	return m.Called(ctx, amount).Error(0)
}
func (m *MockEscrowVault) Release(ctx context.Context, to kernel.Address, amount kernel.Amount) error {
	return m.Called(ctx, to, amount).Error(0)
}
func (m *MockEscrowVault) BalanceOf(ctx context.Context, a kernel.Address) (kernel.Amount, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(kernel.Amount), args.Error(1)
}

type MockAssetLedger struct{ mock.Mock }

func (m *MockAssetLedger) BalanceOf(ctx context.Context, o kernel.Address) (kernel.Amount, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.Amount), args.Error(1)
}
func (m *MockAssetLedger) LockBalances(ctx context.Context, accounts ...kernel.Address) (map[kernel.Address]kernel.Amount, error) {
	args := m.Called(ctx, accounts)
	balances, _ := args.Get(0).(map[kernel.Address]kernel.Amount)
	return balances, args.Error(1)
}
func (m *MockAssetLedger) Transfer(ctx context.Context, from, to kernel.Address, amount kernel.Amount) error {
	return m.Called(ctx, from, to, amount).Error(0)
}
func (m *MockAssetLedger) TransferFrom(
	ctx context.Context,
	spender, o, to kernel.Address,
	amount kernel.Amount,
) error {
	return m.Called(ctx, spender, o, to, amount).Error(0)
}
func (m *MockAssetLedger) Approve(ctx context.Context, o, spender kernel.Address, amount kernel.Amount) error {
	return m.Called(ctx, o, spender, amount).Error(0)
}
func (m *MockAssetLedger) Allowance(ctx context.Context, o, spender kernel.Address) (kernel.Amount, error) {
	args := m.Called(ctx, o, spender)
	return args.Get(0).(kernel.Amount), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Append(ctx context.Context, msgs ...ports.OutboxMessage) error {
	return m.Called(ctx, msgs).Error(0)
}
func (m *MockOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	return m.Called(ctx, msgs).Error(0)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) TrackAggregate(a kernel.AggregateRoot) {
	m.Called(a)
}
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) StakeAccountRepository() ports.StakeAccountRepository {
	return m.Called().Get(0).(ports.StakeAccountRepository)
}
func (m *MockUoW) EscrowVault() ports.EscrowVault {
	return m.Called().Get(0).(ports.EscrowVault)
}
func (m *MockUoW) AssetLedger() ports.AssetLedger {
	return m.Called().Get(0).(ports.AssetLedger)
}
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type shipmentFactory struct{ uow *MockUoW }

func (f shipmentFactory) Create() commands.ShipmentUoW { return f.uow }

type stakeFactory struct{ uow *MockUoW }

func (f stakeFactory) Create() commands.StakeUoW { return f.uow }

type tokenFactory struct{ uow *MockUoW }

func (f tokenFactory) Create() commands.TokenUoW { return f.uow }

type outboxFactory struct{ uow *MockUoW }

func (f outboxFactory) Create() commands.OutboxUoW { return f.uow }

// countingPolicy pays one smallest unit per second regardless of principal.
type countingPolicy struct{}

func (countingPolicy) Name() string { return "counting" }
func (countingPolicy) Accrue(_ kernel.Amount, elapsed time.Duration, carry kernel.Amount) (kernel.Amount, kernel.Amount, error) {
	total, err := kernel.NewAmount(uint64(elapsed)).Add(carry)
	if err != nil {
		return kernel.Amount{}, kernel.Amount{}, err
	}
	return total.DivModUint64(uint64(time.Second))
}
