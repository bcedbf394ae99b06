package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varnam/knownwords/pkg/config"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "varnamdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "varnamdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "varnamdb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, ".", cfg.Store.Dir)
		assert.Equal(t, config.ModeMixed, cfg.Store.LearnMode)
		assert.Equal(t, 1000, cfg.Store.WordsPerFile)

		assert.Equal(t, "localhost", cfg.Postgres.Host)
		assert.Equal(t, 5432, cfg.Postgres.Port)
		assert.Equal(t, "disable", cfg.Postgres.SSLMode)

		assert.Equal(t, "tint", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "stderr", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionStoreLearnMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected config.LearnMode
	}{
		{name: "mixed", input: "mixed", expected: config.ModeMixed},
		{name: "mostly_new", input: "mostly_new", expected: config.ModeMostlyNew},
		{name: "normalizes case", input: "MIXED", expected: config.ModeMixed},
		{name: "ignores invalid", input: "bogus", expected: config.ModeMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreLearnMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.LearnMode)
		})
	}
}

func TestOptionPostgresSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "disable", input: "disable", expected: "disable"},
		{name: "require", input: "require", expected: "require"},
		{name: "normalizes case", input: "REQUIRE", expected: "require"},
		{name: "ignores invalid", input: "invalid", expected: "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptPostgresSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Postgres.SSLMode)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "debug", input: "debug", expected: "debug"},
		{name: "normalizes case", input: "DEBUG", expected: "debug"},
		{name: "ignores invalid", input: "trace", expected: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionStoreWordsPerFile(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets valid value", input: 50, expected: 50},
		{name: "ignores zero", input: 0, expected: 1000},
		{name: "ignores negative", input: -10, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreWordsPerFile(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.WordsPerFile)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptStoreDir("/var/lib/varnamdb"),
			config.OptStoreLearnMode("mostly_new"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}
		cfg.Update(opts)

		assert.Equal(t, "/var/lib/varnamdb", cfg.Store.Dir)
		assert.Equal(t, config.ModeMostlyNew, cfg.Store.LearnMode)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "tint", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		opts := []config.Option{
			config.OptStoreDir("/first"),
			config.OptStoreDir("/second"),
		}
		cfg.Update(opts)
		assert.Equal(t, "/second", cfg.Store.Dir)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("round-trips persistent fields", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptStoreDir("/data/scripts"),
			config.OptStoreLearnMode("mostly_new"),
			config.OptStoreWordsPerFile(250),
			config.OptLogLevel("debug"),
			config.OptLogFormat("json"),
			config.OptJobsNumber(8),
		})

		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		assert.Equal(t, original.Store.Dir, newCfg.Store.Dir)
		assert.Equal(t, original.Store.LearnMode, newCfg.Store.LearnMode)
		assert.Equal(t, original.Store.WordsPerFile, newCfg.Store.WordsPerFile)
		assert.Equal(t, original.Log.Level, newCfg.Log.Level)
		assert.Equal(t, original.Log.Format, newCfg.Log.Format)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes HomeDir runtime field", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/custom/home")})

		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		assert.Equal(t, "", newCfg.HomeDir)
	})
}
