package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/ledgerrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/stakerepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/pkg/keylock"

	"gorm.io/gorm"
)

// GenesisMinter credits the initial token supply on an empty ledger and reports
// whether it did.
type GenesisMinter func(ctx context.Context, treasury kernel.Address, supply kernel.Amount) (bool, error)

// Storage bundles one backend's transactional and read-side adapters.
type Storage struct {
	UoWFactory  ports.UnitOfWorkFactory
	Shipments   ports.ShipmentReader
	Stakes      ports.StakeAccountReader
	Balances    ports.BalanceReader
	MintGenesis GenesisMinter
}

// NewPostgresStorage serves the ledger from db. The schema must be migrated.
func NewPostgresStorage(db *gorm.DB, escrow kernel.Address) Storage {
	return Storage{
		UoWFactory: postgres.NewGormUnitOfWorkFactory(db, escrow),
		Shipments:  shipmentrepo.NewReader(db),
		Stakes:     stakerepo.NewReader(db),
		Balances:   ledgerrepo.NewReader(db),
		MintGenesis: func(ctx context.Context, treasury kernel.Address, supply kernel.Amount) (bool, error) {
			return postgres.MintGenesis(ctx, db, treasury, supply)
		},
	}
}

// NewMemoryStorage serves the ledger from process memory. State is lost on exit.
func NewMemoryStorage(escrow kernel.Address) Storage {
	store := memory.NewStore(escrow)
	return Storage{
		UoWFactory:  memory.NewUnitOfWorkFactory(store),
		Shipments:   store,
		Stakes:      store,
		Balances:    store,
		MintGenesis: store.MintGenesis,
	}
}

type CompositionRoot struct {
	config    Config
	storage   Storage
	publisher ports.EventPublisher
	clock     ports.Clock
	locker    *keylock.Locker
	engine    commands.StakingEngine
	treasury  kernel.Address
	supply    kernel.Amount
}

func NewCompositionRoot(
	config Config,
	storage Storage,
	publisher ports.EventPublisher,
	clock ports.Clock,
) (CompositionRoot, error) {
	engineAddress, engineErr := kernel.ParseAddress(config.StakingEngineAddress)
	treasury, treasuryErr := kernel.ParseAddress(config.TokenTreasuryAddress)
	supply, supplyErr := kernel.AmountFromDecimal(config.TokenInitialSupply)
	flat, flatErr := kernel.AmountFromDecimal(config.RewardFlatPerSecond)
	if err := errors.Join(
		wrapConfigErr("STAKING_ENGINE_ADDRESS", engineErr),
		wrapConfigErr("TOKEN_TREASURY_ADDRESS", treasuryErr),
		wrapConfigErr("TOKEN_INITIAL_SUPPLY", supplyErr),
		wrapConfigErr("REWARD_FLAT_PER_SECOND", flatErr),
	); err != nil {
		return CompositionRoot{}, err
	}

	policy, err := services.NewRewardPolicy(config.RewardModel, config.RewardRateBps, flat)
	if err != nil {
		return CompositionRoot{}, wrapConfigErr("REWARD_MODEL", err)
	}

	return CompositionRoot{
		config:    config,
		storage:   storage,
		publisher: publisher,
		clock:     clock,
		locker:    keylock.New(),
		engine:    commands.StakingEngine{Address: engineAddress, Policy: policy},
		treasury:  treasury,
		supply:    supply,
	}, nil
}

// EscrowAddress parses the escrow custody account from config.
func EscrowAddress(config Config) (kernel.Address, error) {
	escrow, err := kernel.ParseAddress(config.EscrowAddress)
	return escrow, wrapConfigErr("ESCROW_ADDRESS", err)
}

func wrapConfigErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

// MintGenesis seeds the token supply once per ledger.
func (c *CompositionRoot) MintGenesis(ctx context.Context) (bool, error) {
	return c.storage.MintGenesis(ctx, c.treasury, c.supply)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.storage.UoWFactory.Create()
	})
}

func (c *CompositionRoot) stakeUoWFactory() commands.StakeUoWFactory {
	return FuncStakeUoWFactory(func() commands.StakeUoW {
		return c.storage.UoWFactory.Create()
	})
}

func (c *CompositionRoot) tokenUoWFactory() commands.TokenUoWFactory {
	return FuncTokenUoWFactory(func() commands.TokenUoW {
		return c.storage.UoWFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.storage.UoWFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateStartShipmentCommandHandler() commands.StartShipmentCommandHandler {
	return commands.NewStartShipmentCommandHandler(c.shipmentUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateCompleteShipmentCommandHandler() commands.CompleteShipmentCommandHandler {
	return commands.NewCompleteShipmentCommandHandler(c.shipmentUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateStakeCommandHandler() commands.StakeCommandHandler {
	return commands.NewStakeCommandHandler(c.stakeUoWFactory(), c.locker, c.clock, c.engine)
}

func (c *CompositionRoot) CreateWithdrawStakeCommandHandler() commands.WithdrawStakeCommandHandler {
	return commands.NewWithdrawStakeCommandHandler(c.stakeUoWFactory(), c.locker, c.clock, c.engine)
}

func (c *CompositionRoot) CreateClaimRewardCommandHandler() commands.ClaimRewardCommandHandler {
	return commands.NewClaimRewardCommandHandler(c.stakeUoWFactory(), c.locker, c.clock, c.engine)
}

func (c *CompositionRoot) CreateApproveTokensCommandHandler() commands.ApproveTokensCommandHandler {
	return commands.NewApproveTokensCommandHandler(c.tokenUoWFactory())
}

func (c *CompositionRoot) CreateTransferTokensCommandHandler() commands.TransferTokensCommandHandler {
	return commands.NewTransferTokensCommandHandler(c.tokenUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateQueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		QuoteShipment:        queries.NewQuoteShipmentQueryHandler(),
		GetShipment:          queries.NewGetShipmentQueryHandler(c.storage.Shipments),
		GetSenderShipments:   queries.NewGetSenderShipmentsQueryHandler(c.storage.Shipments),
		GetSenderCount:       queries.NewGetSenderCountQueryHandler(c.storage.Shipments),
		GetReceiverShipments: queries.NewGetReceiverShipmentsQueryHandler(c.storage.Shipments),
		GetReceiverCount:     queries.NewGetReceiverCountQueryHandler(c.storage.Shipments),
		GetAccountStats:      queries.NewGetAccountStatsQueryHandler(c.storage.Shipments),
		GetNativeBalance:     queries.NewGetNativeBalanceQueryHandler(c.storage.Balances),
		GetTokenBalance:      queries.NewGetTokenBalanceQueryHandler(c.storage.Balances, c.engine.Address),
		GetStakeAccount:      queries.NewGetStakeAccountQueryHandler(c.storage.Stakes, c.clock, c.engine.Policy),
	}
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			CreateShipment:   c.CreateCreateShipmentCommandHandler(),
			StartShipment:    c.CreateStartShipmentCommandHandler(),
			CompleteShipment: c.CreateCompleteShipmentCommandHandler(),
			Stake:            c.CreateStakeCommandHandler(),
			WithdrawStake:    c.CreateWithdrawStakeCommandHandler(),
			ClaimReward:      c.CreateClaimRewardCommandHandler(),
			ApproveTokens:    c.CreateApproveTokensCommandHandler(),
			TransferTokens:   c.CreateTransferTokensCommandHandler(),
		},
		c.CreateQueryHandlers(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRelayOutboxCommandHandler(),
		c.config.OutboxRelaySchedule,
		c.config.OutboxRelayBatch,
		logger,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncStakeUoWFactory func() commands.StakeUoW

func (f FuncStakeUoWFactory) Create() commands.StakeUoW {
	return f()
}

type FuncTokenUoWFactory func() commands.TokenUoW

func (f FuncTokenUoWFactory) Create() commands.TokenUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
