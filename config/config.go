package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Session   SessionConfig   `mapstructure:"session"`
	Npg       NpgConfig       `mapstructure:"npg"`
	Migration MigrationConfig `mapstructure:"migration"`
	Log       LogConfig       `mapstructure:"log"`
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

// SessionConfig governs onboarding sessions and their security tokens.
type SessionConfig struct {
	TTL         time.Duration `mapstructure:"ttl"`
	TokenSecret string        `mapstructure:"token_secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	TokenIssuer string        `mapstructure:"token_issuer"`
}

// NpgConfig holds the per-PSP gateway credentials. APIKeysJSON is the raw
// JSON map of {pspId: apiKey}; RequiredPsps must all appear in it.
type NpgConfig struct {
	APIKeysJSON   string   `mapstructure:"api_keys_json"`
	RequiredPsps  []string `mapstructure:"required_psps"`
	DefaultAPIKey string   `mapstructure:"default_api_key"`
}

// MigrationConfig parametrizes the legacy payment-manager migration path.
type MigrationConfig struct {
	CardPaymentMethodID  string `mapstructure:"card_payment_method_id"`
	DefaultApplicationID string `mapstructure:"default_application_id"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WLT_.
// Nested keys use underscore: WLT_DATABASE_HOST, WLT_NPG_API_KEYS_JSON, etc.
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
	v.SetDefault("database.dbname", "wallet_service")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.ttl", "15m")
	v.SetDefault("session.token_secret", "")
	v.SetDefault("session.token_expiry", "15m")
	v.SetDefault("session.token_issuer", "wallet-lifecycle-service")
	v.SetDefault("npg.api_keys_json", "{}")
	v.SetDefault("npg.required_psps", []string{})
	v.SetDefault("npg.default_api_key", "")
	v.SetDefault("migration.card_payment_method_id", "")
	v.SetDefault("migration.default_application_id", "PAGOPA")
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

	// Environment variables: WLT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WLT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}
