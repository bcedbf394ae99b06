// Package config provides configuration management for the known-words
// store.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify Config
//   - Invalid options are rejected with gn.Warn() - config remains in valid state
//   - ToOptions() converts persistent fields (those in config.yaml)
//   - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use VARNAM_ prefix with underscores for nesting:
//
//	VARNAM_STORE_DIR=/var/lib/varnamdb
//	VARNAM_STORE_LEARN_MODE=mixed
//	VARNAM_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Tunables fixed by the store's contract (spec §6). These are not
// Option-configurable: changing them would change the persisted data
// shape, not a deployment preference.
const (
	// MaxPatternsPerWord caps full-pattern insertions per learn call (I6).
	MaxPatternsPerWord = 1000
	// MinInputLenForSuggestion gates best_match/suggestions (P6).
	MinInputLenForSuggestion = 3
	// BestMatchResultCap bounds best_match's result length.
	BestMatchResultCap = 5
	// SuggestionResultCap bounds suggestions' result length.
	SuggestionResultCap = 5
	// PatternLookupCapPerStep bounds rows read per tokenizer walk step.
	PatternLookupCapPerStep = 3
	// ImportLineBuffer is the byte budget for one import line.
	ImportLineBuffer = 1000
)

// LearnMode selects learn_word's insert/update strategy (spec §4.2).
// The end state is identical either way; mode only affects throughput.
type LearnMode string

const (
	// ModeMixed attempts UPDATE confidence first, INSERT on zero rows
	// affected. Default.
	ModeMixed LearnMode = "mixed"
	// ModeMostlyNew attempts INSERT first (ON CONFLICT IGNORE), falls back
	// to UPDATE confidence on zero rows inserted.
	ModeMostlyNew LearnMode = "mostly_new"
)

// Config represents the complete known-words store configuration.
type Config struct {
	// Store contains the per-language SQLite store settings.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Postgres contains connection settings for the optional centralized
	// multi-writer backend.
	Postgres PostgresConfig `mapstructure:"postgres" yaml:"postgres"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is informational only here (the store is single-writer
	// per handle, §5); it sizes worker pools in callers such as a batch
	// importer driving many per-language handles concurrently.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// There is no default value; it stays empty unless OptHomeDir is
	// applied (the varnamdb CLI does not set it).
	HomeDir string
}

// StoreConfig contains settings for the file-backed per-language store.
type StoreConfig struct {
	// Dir is the directory holding "<language>.vst.learnings" files.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// LearnMode selects the learn_word insert/update strategy.
	LearnMode LearnMode `mapstructure:"learn_mode" yaml:"learn_mode"`

	// WordsPerFile is the default export shard size.
	WordsPerFile int `mapstructure:"words_per_file" yaml:"words_per_file"`
}

// PostgresConfig contains connection parameters for the optional
// centralized backend (internal/iopgstore).
type PostgresConfig struct {
	Host      string `mapstructure:"host" yaml:"host"`
	Port      int    `mapstructure:"port" yaml:"port"`
	User      string `mapstructure:"user" yaml:"user"`
	Password  string `mapstructure:"password" yaml:"password"`
	Database  string `mapstructure:"database" yaml:"database"`
	SSLMode   string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
	BatchSize int    `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT.
	// pkg/logger.New does not read it and always writes to stderr.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	return &Config{
		Store: StoreConfig{
			Dir:          ".",
			LearnMode:    ModeMixed,
			WordsPerFile: 1000,
		},
		Postgres: PostgresConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "varnamdb",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format:      "tint",
			Level:       "info",
			Destination: "stderr",
		},
		JobsNumber: runtime.NumCPU(),
	}
}
