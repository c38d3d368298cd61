package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownSessionBackend       = errors.New("unknown session backend")
)

// Session backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`        // Telegram API token loaded from environment
	Session          Session `mapstructure:"session"`  // where live quiz sessions are kept
	DB               DB      `mapstructure:"database"` // database configuration section
	Redis            Redis   `mapstructure:"redis"`    // redis configuration section
	TUI              TUI     `mapstructure:"tui"`      // terminal front end options
}

// Session selects the session store.
type Session struct {
	Backend string        `mapstructure:"backend"` // memory, postgres or redis
	TTL     time.Duration `mapstructure:"ttl"`     // idle lifetime of a redis session, 0 keeps it
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Redis contains redis connection parameters.
type Redis struct {
	URL string `mapstructure:"-"` // redis URL loaded from environment
}

// TUI configures the terminal front end.
type TUI struct {
	NoColor bool   `mapstructure:"no_color"` // render without ANSI colors
	LogFile string `mapstructure:"log_file"` // log destination, empty disables logging
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads .env, ./config/config.yaml and environment variables.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return LoadFrom("./config")
}

// LoadFrom reads configuration with config.yaml looked up in dir.
func LoadFrom(dir string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("session.backend", BackendMemory)
	v.SetDefault("session.ttl", "0s")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("tui.no_color", false)
	v.SetDefault("tui.log_file", "")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("session.backend", "SESSION_BACKEND")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")
	cfg.Redis.URL = v.GetString("redis_url")

	if err := cfg.validateBackend(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RequireTelegram checks the settings the Telegram bot cannot run without.
func (c *Config) RequireTelegram() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}

func (c *Config) validateBackend() error {
	switch c.Session.Backend {
	case BackendMemory:
		return nil
	case BackendPostgres:
		if c.DB.URL == "" {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
		return nil
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("%w: REDIS_URL", ErrMissingEnvironmentVariables)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSessionBackend, c.Session.Backend)
	}
}
