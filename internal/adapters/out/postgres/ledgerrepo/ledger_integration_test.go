package ledgerrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/ledgerrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	treasury = kernel.MustParseAddress("0x7000000000000000000000000000000000000007")
	owner    = kernel.MustParseAddress("0x4000000000000000000000000000000000000004")
	engine   = kernel.MustParseAddress("0x5000000000000000000000000000000000000005")
	custody  = kernel.MustParseAddress("0x6000000000000000000000000000000000000006")
	sender   = kernel.MustParseAddress("0x1000000000000000000000000000000000000001")
)

// LedgerIntegrationTestSuite verifies balance bookkeeping against PostgreSQL.
type LedgerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	reader    *ledgerrepo.Reader
}

func (suite *LedgerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.AllowanceDTO{}))
	suite.Require().NoError(db.Table(ledgerrepo.NativeBalancesTable).AutoMigrate(&ledgerrepo.BalanceDTO{}))
	suite.Require().NoError(db.Table(ledgerrepo.TokenBalancesTable).AutoMigrate(&ledgerrepo.BalanceDTO{}))
	suite.reader = ledgerrepo.NewReader(db)
}

func (suite *LedgerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE native_balances, token_balances, token_allowances").Error)
}

func (suite *LedgerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerIntegrationTestSuite) TestMintGenesis_OnlyOnce() {
	ctx := context.Background()

	minted, err := ledgerrepo.MintGenesis(ctx, suite.db, treasury, kernel.NewAmount(1000))
	suite.Require().NoError(err)
	suite.True(minted)

	minted, err = ledgerrepo.MintGenesis(ctx, suite.db, owner, kernel.NewAmount(1000))
	suite.Require().NoError(err)
	suite.False(minted)

	suite.balance(treasury, "1000")
	suite.balance(owner, "0")
}

func (suite *LedgerIntegrationTestSuite) TestTransferFrom_SpendsAllowance() {
	ctx := context.Background()
	suite.mint(500)

	suite.Require().NoError(suite.db.Transaction(func(tx *gorm.DB) error {
		ledger := ledgerrepo.NewGormAssetLedger(tx)
		if err := ledger.Transfer(ctx, treasury, owner, kernel.NewAmount(300)); err != nil {
			return err
		}
		if err := ledger.Approve(ctx, owner, engine, kernel.NewAmount(200)); err != nil {
			return err
		}
		return ledger.TransferFrom(ctx, engine, owner, engine, kernel.NewAmount(150))
	}))

	suite.balance(owner, "150")
	suite.balance(engine, "150")
	left, err := suite.reader.TokenAllowance(ctx, owner, engine)
	suite.Require().NoError(err)
	suite.Equal("50", left.String())

	err = suite.db.Transaction(func(tx *gorm.DB) error {
		return ledgerrepo.NewGormAssetLedger(tx).TransferFrom(ctx, engine, owner, engine, kernel.NewAmount(100))
	})
	suite.Require().ErrorIs(err, errs.ErrTransferFailed)
	suite.balance(owner, "150")
}

func (suite *LedgerIntegrationTestSuite) TestTransfer_Overdraft() {
	ctx := context.Background()
	suite.mint(10)

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		return ledgerrepo.NewGormAssetLedger(tx).Transfer(ctx, treasury, owner, kernel.NewAmount(11))
	})

	suite.Require().ErrorIs(err, errs.ErrTransferFailed)
	var short *errs.InsufficientFundsError
	var failed *errs.TransferFailedError
	suite.Require().ErrorAs(err, &failed)
	suite.Require().ErrorAs(failed.Cause, &short)
	suite.Equal("10", short.Available)
	suite.balance(treasury, "10")
}

// TestLockBalances_CheckThenTransferIsSerialized checks the balance under
// the row lock before moving it, so a failed check is the only way to lose.
func (suite *LedgerIntegrationTestSuite) TestLockBalances_CheckThenTransferIsSerialized() {
	ctx := context.Background()
	suite.mint(100)

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.db.Transaction(func(tx *gorm.DB) error {
				ledger := ledgerrepo.NewGormAssetLedger(tx)
				locked, err := ledger.LockBalances(ctx, owner, treasury)
				if err != nil {
					return err
				}
				if locked[treasury].LessThan(kernel.NewAmount(30)) {
					return errs.NewInsufficientRewardPoolError(kernel.NewAmount(30), locked[treasury])
				}
				return ledger.Transfer(ctx, treasury, owner, kernel.NewAmount(30))
			})
		}()
	}
	wg.Wait()
	close(results)

	var moved int
	for err := range results {
		if err == nil {
			moved++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrInsufficientRewardPool)
	}
	suite.Equal(3, moved)
	suite.balance(treasury, "10")
	suite.balance(owner, "90")
}

// TestTransfer_ConcurrentDebitsNeverOverdraw races transfers that together
// exceed the balance; row locks must let only the covered ones through.
func (suite *LedgerIntegrationTestSuite) TestTransfer_ConcurrentDebitsNeverOverdraw() {
	ctx := context.Background()
	suite.mint(100)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = suite.db.Transaction(func(tx *gorm.DB) error {
				return ledgerrepo.NewGormAssetLedger(tx).Transfer(ctx, treasury, owner, kernel.NewAmount(30))
			})
		}()
	}
	wg.Wait()

	suite.balance(treasury, "10")
	suite.balance(owner, "90")
}

func (suite *LedgerIntegrationTestSuite) TestEscrowVault_DepositAndRelease() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Transaction(func(tx *gorm.DB) error {
		vault := ledgerrepo.NewGormEscrowVault(tx, custody)
		if err := vault.Deposit(ctx, kernel.NewAmount(700)); err != nil {
			return err
		}
		return vault.Release(ctx, sender, kernel.NewAmount(300))
	}))

	held, err := suite.reader.NativeBalanceOf(ctx, custody)
	suite.Require().NoError(err)
	paid, err := suite.reader.NativeBalanceOf(ctx, sender)
	suite.Require().NoError(err)
	suite.Equal("400", held.String())
	suite.Equal("300", paid.String())

	err = suite.db.Transaction(func(tx *gorm.DB) error {
		return ledgerrepo.NewGormEscrowVault(tx, custody).Release(ctx, sender, kernel.NewAmount(401))
	})
	suite.Require().ErrorIs(err, errs.ErrTransferFailed)
}

func (suite *LedgerIntegrationTestSuite) mint(amount uint64) {
	minted, err := ledgerrepo.MintGenesis(context.Background(), suite.db, treasury, kernel.NewAmount(amount))
	suite.Require().NoError(err)
	suite.Require().True(minted)
}

func (suite *LedgerIntegrationTestSuite) balance(account kernel.Address, expected string) {
	got, err := suite.reader.TokenBalanceOf(context.Background(), account)
	suite.Require().NoError(err)
	suite.Equal(expected, got.String())
}

func TestLedgerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(LedgerIntegrationTestSuite))
}
