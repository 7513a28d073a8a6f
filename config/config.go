package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LedgerConfig holds settlement-engine policy knobs.
type LedgerConfig struct {
	LockTimeout            time.Duration `mapstructure:"lock_timeout"`
	DisbursementMaxRetries int           `mapstructure:"disbursement_max_retries"`
	DisbursementBatchMax   int           `mapstructure:"disbursement_batch_max"`
	TopUpBankTransferTTL   time.Duration `mapstructure:"topup_bank_transfer_ttl"`
	TopUpMobileMoneyTTL    time.Duration `mapstructure:"topup_mobile_money_ttl"`
	TopUpCardTTL           time.Duration `mapstructure:"topup_card_ttl"`
	ConfirmationCacheTTL   time.Duration `mapstructure:"confirmation_cache_ttl"`
	SettlementDelay        time.Duration `mapstructure:"settlement_delay"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PLC_ (Payment Ledger Core).
// Nested keys use underscore: PLC_DATABASE_HOST, PLC_LEDGER_LOCK_TIMEOUT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ledger.lock_timeout", "3s")
	v.SetDefault("ledger.disbursement_max_retries", 3)
	v.SetDefault("ledger.disbursement_batch_max", 100)
	v.SetDefault("ledger.topup_bank_transfer_ttl", "72h")
	v.SetDefault("ledger.topup_mobile_money_ttl", "15m")
	v.SetDefault("ledger.topup_card_ttl", "30m")
	v.SetDefault("ledger.confirmation_cache_ttl", "24h")
	v.SetDefault("ledger.settlement_delay", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PLC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PLC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Ledger.LockTimeout <= 0 {
		return fmt.Errorf("ledger lock_timeout must be positive")
	}
	if c.Ledger.DisbursementMaxRetries < 0 {
		return fmt.Errorf("disbursement_max_retries must not be negative")
	}
	if c.Ledger.DisbursementBatchMax <= 0 {
		return fmt.Errorf("disbursement_batch_max must be positive")
	}
	return nil
}
