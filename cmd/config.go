package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	Storage  string `env:"STORAGE"   envDefault:"postgres"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"logistics"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	KafkaBrokers            []string `env:"KAFKA_BROKERS"             envSeparator:","`
	KafkaNotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"logistics.notifications"`

	EscrowAddress        string `env:"ESCROW_ADDRESS"         envDefault:"0x000000000000000000000000000000000000E5C0"`
	StakingEngineAddress string `env:"STAKING_ENGINE_ADDRESS" envDefault:"0x0000000000000000000000000000000000005Eed"`
	TokenTreasuryAddress string `env:"TOKEN_TREASURY_ADDRESS" envDefault:"0x000000000000000000000000000000000000Ba5E"`
	// TokenInitialSupply is minted to the treasury once, on an empty ledger.
	TokenInitialSupply string `env:"TOKEN_INITIAL_SUPPLY" envDefault:"1000000000000000000000000"`

	RewardModel         string `env:"REWARD_MODEL"           envDefault:"proportional"`
	RewardRateBps       uint64 `env:"REWARD_RATE_BPS"        envDefault:"100"`
	RewardFlatPerSecond string `env:"REWARD_FLAT_PER_SECOND" envDefault:"0"`

	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS"      envDefault:"50"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST"    envDefault:"100"`
	RateLimitIdle  time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`

	OutboxRelaySchedule string `env:"OUTBOX_RELAY_SCHEDULE" envDefault:"*/5 * * * * *"`
	OutboxRelayBatch    int    `env:"OUTBOX_RELAY_BATCH"    envDefault:"100"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads the optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return Config{}, fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, cfg.Storage)
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
