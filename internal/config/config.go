package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/inkwell-sh/inkwell/internal/plan"
)

// Backends for the tracker ledger.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds all runtime configuration for an inkwell invocation.
// Values are populated from .inkwell.yaml, INKWELL_* env vars, and CLI
// flags. The core packages never read configuration themselves; commands
// convert this into typed parameters at call time.
type Config struct {
	Text            string `mapstructure:"text"`
	Year            int    `mapstructure:"year"`
	CommitsPerPixel int    `mapstructure:"commits_per_pixel"`
	StartWeek       int    `mapstructure:"start_week"`
	BackgroundLevel int    `mapstructure:"background_level"` // negative = leveling off
	RepoDir         string `mapstructure:"repo_dir"`
	StateDir        string `mapstructure:"state_dir"`
	LedgerBackend   string `mapstructure:"ledger_backend"`
	CountsFile      string `mapstructure:"counts_file"`
	BatchLimit      int    `mapstructure:"batch_limit"` // 0 = unlimited
	NoColor         bool   `mapstructure:"no_color"`
	Verbose         bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("text", "")
	viper.SetDefault("year", time.Now().Year())
	viper.SetDefault("commits_per_pixel", 20)
	viper.SetDefault("start_week", 1)
	viper.SetDefault("background_level", -1)
	viper.SetDefault("repo_dir", ".")
	viper.SetDefault("state_dir", ".inkwell")
	viper.SetDefault("ledger_backend", BackendFile)
	viper.SetDefault("counts_file", "")
	viper.SetDefault("batch_limit", 0)
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// PlanParams converts the config plus observed counts into planner inputs.
// A negative background level means leveling is disabled.
func (c Config) PlanParams(existing map[string]int) plan.Params {
	p := plan.Params{
		Text:            c.Text,
		Year:            c.Year,
		CommitsPerPixel: c.CommitsPerPixel,
		StartWeek:       c.StartWeek,
		ExistingCounts:  existing,
	}
	if c.BackgroundLevel >= 0 {
		level := c.BackgroundLevel
		p.BackgroundLevel = &level
	}
	return p
}

// LedgerPath returns the ledger location for the configured backend.
func (c Config) LedgerPath() string {
	if c.LedgerBackend == BackendSQLite {
		return filepath.Join(c.StateDir, "ledger.db")
	}
	return filepath.Join(c.StateDir, "ledger.json")
}

// JournalPath returns the run journal location.
func (c Config) JournalPath() string {
	return filepath.Join(c.StateDir, "journal.jsonl")
}
