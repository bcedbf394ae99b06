package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/varnam/knownwords/internal/ioconfig"
	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "varnamdb",
		Short: "varnamdb manages a varnam known-words store",
		Long: `varnamdb is a manual-testing harness over the known-words learning
engine: a persistent store of learned words and their romanized
patterns, with cartesian-product pattern learning, prefix tokenizing
and sharded export/import.

Configuration is managed through a varnamdb.yaml file, environment
variables (with VARNAM_ prefix), and command-line flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			ioconfig.BindFlags(cmd, result)
			cfg = result
			log = logger.New(&cfg.Log)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./varnamdb.yaml or ~/.config/varnamdb/varnamdb.yaml)")
	rootCmd.PersistentFlags().String("store-dir", "", "directory holding the SQLite store file")
	rootCmd.PersistentFlags().String("learn-mode", "", "learn_word strategy: mixed or mostly_new")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "", "json, text, or tint")

	rootCmd.AddCommand(
		getLearnCmd(),
		getBestMatchCmd(),
		getSuggestCmd(),
		getDeleteCmd(),
		getExportLearnedCmd(),
		getExportFullCmd(),
		getImportCmd(),
		getStatsCmd(),
	)

	return rootCmd
}
