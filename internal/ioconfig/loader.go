// Package ioconfig loads pkg/config.Config from a varnamdb.yaml file,
// VARNAM_-prefixed environment variables, and cobra flags, layered
// through spf13/viper the way the teacher's internal/io/config does.
// This is an impure package: it touches the filesystem and the
// process environment, which pkg/config itself never does.
package ioconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varnam/knownwords/pkg/config"
)

// Load reads configuration from cfgFile (or the default search path
// when cfgFile is empty), overlays VARNAM_-prefixed environment
// variables, and returns a valid config.Config. A missing config file
// is not an error: it falls back to config.New()'s defaults.
func Load(cfgFile string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("VARNAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("varnamdb")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "varnamdb"))
		}
	}

	cfg := config.New()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || errors.Is(err, os.ErrNotExist) {
			applyEnv(v, cfg)
			return cfg, nil
		}
		if cfgFile != "" {
			return nil, err
		}
		applyEnv(v, cfg)
		return cfg, nil
	}

	applyFile(v, cfg)
	applyEnv(v, cfg)
	return cfg, nil
}

// applyFile layers config.yaml's persistent fields over cfg's
// defaults, matching pkg/config.ToOptions()'s field set.
func applyFile(v *viper.Viper, cfg *config.Config) {
	opts := []config.Option{}
	if v.IsSet("store.dir") {
		opts = append(opts, config.OptStoreDir(v.GetString("store.dir")))
	}
	if v.IsSet("store.learn_mode") {
		opts = append(opts, config.OptStoreLearnMode(v.GetString("store.learn_mode")))
	}
	if v.IsSet("store.words_per_file") {
		opts = append(opts, config.OptStoreWordsPerFile(v.GetInt("store.words_per_file")))
	}
	if v.IsSet("postgres.host") {
		opts = append(opts, config.OptPostgresHost(v.GetString("postgres.host")))
	}
	if v.IsSet("postgres.port") {
		opts = append(opts, config.OptPostgresPort(v.GetInt("postgres.port")))
	}
	if v.IsSet("postgres.user") {
		opts = append(opts, config.OptPostgresUser(v.GetString("postgres.user")))
	}
	if v.IsSet("postgres.password") {
		opts = append(opts, config.OptPostgresPassword(v.GetString("postgres.password")))
	}
	if v.IsSet("postgres.database") {
		opts = append(opts, config.OptPostgresDatabase(v.GetString("postgres.database")))
	}
	if v.IsSet("postgres.ssl_mode") {
		opts = append(opts, config.OptPostgresSSLMode(v.GetString("postgres.ssl_mode")))
	}
	if v.IsSet("postgres.batch_size") {
		opts = append(opts, config.OptPostgresBatchSize(v.GetInt("postgres.batch_size")))
	}
	if v.IsSet("log.level") {
		opts = append(opts, config.OptLogLevel(v.GetString("log.level")))
	}
	if v.IsSet("log.format") {
		opts = append(opts, config.OptLogFormat(v.GetString("log.format")))
	}
	if v.IsSet("log.destination") {
		opts = append(opts, config.OptLogDestination(v.GetString("log.destination")))
	}
	if v.IsSet("jobs_number") {
		opts = append(opts, config.OptJobsNumber(v.GetInt("jobs_number")))
	}
	cfg.Update(opts)
}

// applyEnv overlays VARNAM_-prefixed environment variables, which
// AutomaticEnv makes visible through the same dotted keys as the file.
func applyEnv(v *viper.Viper, cfg *config.Config) {
	applyFile(v, cfg)
}

// BindFlags binds cmd's persistent flags into opts, so CLI flags take
// precedence over file and environment values when passed to
// cfg.Update.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	opts := []config.Option{}
	if f := cmd.Flags().Lookup("store-dir"); f != nil && f.Changed {
		opts = append(opts, config.OptStoreDir(f.Value.String()))
	}
	if f := cmd.Flags().Lookup("learn-mode"); f != nil && f.Changed {
		opts = append(opts, config.OptStoreLearnMode(f.Value.String()))
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		opts = append(opts, config.OptLogLevel(f.Value.String()))
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		opts = append(opts, config.OptLogFormat(f.Value.String()))
	}
	cfg.Update(opts)
}
