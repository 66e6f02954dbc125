package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS, default=:8080"`
	DatabaseURI       string        `env:"DATABASE_URI"`
	LogLevel          string        `env:"LOG_LEVEL, default=info"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT, default=5s"`
	BcryptCost        int           `env:"BCRYPT_COST, default=10"`

	DB        DBConfig
	RateLimit RateLimitConfig
}

// DBConfig describes the discrete connection settings used when DATABASE_URI is not set.
type DBConfig struct {
	Host     string `env:"DB_HOST"`
	Port     int    `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
}

// RateLimitConfig configures the global request limiter. A zero RPS disables it.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS, default=0"`
	Burst int     `env:"RATE_LIMIT_BURST, default=20"`
}

const (
	defaultEnvFile         = ".env"
	defaultShutdownTimeout = 10 * time.Second
	defaultRateLimitBurst  = 20
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	return load(os.Args[1:], envconfig.OsLookuper())
}

// loadEnvFile populates the process environment from ENV_FILE (or .env).
// Variables already set win; a missing file is not an error.
func loadEnvFile() error {
	envFile := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		envFile = v
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func load(args []string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("customersystem", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	flags.Float64Var(&cfg.RateLimit.RPS, "rate-limit", cfg.RateLimit.RPS, "Requests per second allowed, 0 disables limiting")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RateLimit.RPS < 0 {
		cfg.RateLimit.RPS = 0
	}

	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}

	if cfg.DatabaseURI == "" {
		dsn, err := cfg.DB.dsn()
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURI = dsn
	}

	return cfg, nil
}

func (c DBConfig) dsn() (string, error) {
	if c.Host == "" || c.User == "" || c.Password == "" || c.Name == "" {
		return "", fmt.Errorf("database URI or DB_HOST, DB_USER, DB_PASSWORD and DB_NAME must be provided")
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
