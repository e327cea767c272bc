package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/eventlog"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/clock"
	"logistics/internal/pkg/ratelimiter"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("ledger stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	logger := newLogger(config.LogLevel)
	slog.SetDefault(logger)

	escrow, err := cmd.EscrowAddress(config)
	if err != nil {
		return err
	}

	storage, closeStorage, err := openStorage(ctx, config, escrow)
	if err != nil {
		return err
	}
	defer closeStorage()

	publisher, closePublisher := newPublisher(config, logger)
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(config, storage, publisher, clock.System{})
	if err != nil {
		return err
	}

	minted, err := app.MintGenesis(ctx)
	if err != nil {
		return fmt.Errorf("mint genesis supply: %w", err)
	}
	if minted {
		logger.InfoContext(ctx, "Genesis supply minted",
			"treasury", config.TokenTreasuryAddress, "supply", config.TokenInitialSupply)
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, config, logger)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func openStorage(ctx context.Context, config cmd.Config, escrow kernel.Address) (cmd.Storage, func(), error) {
	if config.Storage == cmd.StorageMemory {
		slog.WarnContext(ctx, "Using in-memory storage; ledger state is lost on exit")
		return cmd.NewMemoryStorage(escrow), func() {}, nil
	}

	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return cmd.Storage{}, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return cmd.Storage{}, nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()
		return cmd.Storage{}, nil, fmt.Errorf("migrate schema: %w", err)
	}

	return cmd.NewPostgresStorage(db, escrow), func() { _ = sqlDB.Close() }, nil
}

func newPublisher(config cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if len(config.KafkaBrokers) == 0 {
		return eventlog.NewPublisher(logger), func() {}
	}

	publisher := kafka.NewEventPublisher(
		kafka.NewWriter(config.KafkaBrokers, config.KafkaNotificationsTopic),
		logger,
	)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Closing kafka writer failed", "error", err)
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e, err := httpadapter.NewRouter(app.CreateServer(), httpadapter.RouterOptions{
		Limiter:  ratelimiter.New(config.RateLimitRPS, config.RateLimitBurst, config.RateLimitIdle),
		Registry: registry,
	})
	if err != nil {
		return err
	}
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr, "storage", config.Storage)
		serverErr <- e.Start(addr)
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	logger.Info("Shutting down")
	return e.Shutdown(shutdownCtx)
}
