package postgres_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/stake"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	custody  = kernel.MustParseAddress("0x6000000000000000000000000000000000000006")
	sender   = kernel.MustParseAddress("0x1000000000000000000000000000000000000001")
	receiver = kernel.MustParseAddress("0x2000000000000000000000000000000000000002")
	owner    = kernel.MustParseAddress("0x4000000000000000000000000000000000000004")
	engine   = kernel.MustParseAddress("0x5000000000000000000000000000000000000005")
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the GORM-based
// Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, custody)
}

// SetupTest truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.Tables, ", ")).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitWritesOutbox verifies a shipment, its escrow and its
// events are stored by one commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWritesOutbox() {
	ctx := context.Background()
	uow := suite.factory.Create()
	s := createTestShipment(suite.T(), 0)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.EscrowVault().Deposit(ctx, s.Price()))
	uow.TrackAggregate(s)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(s.DomainEvents(), "Events should be cleared after commit")

	relay := suite.factory.Create()
	suite.Require().NoError(relay.Begin(ctx))
	msgs, err := relay.OutboxRepository().FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(msgs, 1)
	suite.Equal(shipment.EventShipmentCreated, msgs[0].Name)
	suite.Contains(string(msgs[0].Payload), s.Sender().String())

	suite.Require().NoError(relay.OutboxRepository().MarkPublished(ctx, []kernel.UUID{msgs[0].ID}, time.Now()))
	suite.Require().NoError(relay.Commit(ctx))

	after := suite.factory.Create()
	suite.Require().NoError(after.Begin(ctx))
	defer func() { _ = after.Rollback(ctx) }()
	left, err := after.OutboxRepository().FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(left)

	held, err := after.EscrowVault().BalanceOf(ctx, custody)
	suite.Require().NoError(err)
	suite.Equal(s.Price().String(), held.String())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards the shipment,
// the escrow deposit and the outbox together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	s := createTestShipment(suite.T(), 0)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.EscrowVault().Deposit(ctx, s.Price()))
	uow.TrackAggregate(s)
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	defer func() { _ = check.Rollback(ctx) }()

	_, err := check.ShipmentRepository().Get(ctx, sender, 0)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	held, err := check.EscrowVault().BalanceOf(ctx, custody)
	suite.Require().NoError(err)
	suite.True(held.IsZero())

	next, err := check.ShipmentRepository().NextIndex(ctx, sender)
	suite.Require().NoError(err)
	suite.Zero(next)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReleaseFailsWithoutCustody() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.EscrowVault().Release(ctx, sender, kernel.NewAmount(1))
	suite.Require().ErrorIs(err, errs.ErrTransferFailed)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StakeAccountRoundTrip() {
	ctx := context.Background()
	at := time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC)
	acc, err := stake.RestoreAccount(owner, kernel.NewAmount(100), kernel.NewAmount(3), kernel.NewAmount(4_999), at)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StakeAccountRepository().Save(ctx, acc))
	suite.Require().NoError(uow.AssetLedger().Approve(ctx, owner, engine, kernel.NewAmount(40)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	got, err := uow.StakeAccountRepository().Get(ctx, owner)
	suite.Require().NoError(err)
	suite.Equal("100", got.Principal().String())
	suite.Equal("3", got.AccruedRewards().String())
	suite.Equal("4999", got.RewardRemainder().String())
	suite.True(at.Equal(got.LastAccrualTime()))

	allowance, err := uow.AssetLedger().Allowance(ctx, owner, engine)
	suite.Require().NoError(err)
	suite.Equal("40", allowance.String())
}

func createTestShipment(t *testing.T, index uint64) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(sender, index, receiver, shipment.Attributes{
		ItemName: "Steel beams",
		Mode:     shipment.Land,
		ItemType: shipment.Iron,
		Distance: 120,
		Weight:   40,
	}, kernel.NewAmount(1_000_000), time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// TestUnitOfWorkIntegrationSuite runs the integration test suite.
func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
