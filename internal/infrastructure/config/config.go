package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Files
	AccountsFile string `env:"ACCOUNTS_FILE" envDefault:"current_bank_accounts.txt"`
	JournalFile  string `env:"JOURNAL_FILE"  envDefault:"daily_bank_transactions.txt"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Observability endpoint (optional - disabled by default)
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsAddr    string `env:"METRICS_ADDR"    envDefault:":9102"`

	// Journal flush retry
	FlushRetryInitial    time.Duration `env:"FLUSH_RETRY_INITIAL"     envDefault:"100ms"`
	FlushRetryMaxElapsed time.Duration `env:"FLUSH_RETRY_MAX_ELAPSED" envDefault:"5s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
