package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/varnam/knownwords/pkg/exchange"
)

func getExportLearnedCmd() *cobra.Command {
	var outDir string
	var wordsPerFile int

	cmd := &cobra.Command{
		Use:   "export-learned <language>",
		Short: "Export learned words as sharded {word, confidence} files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openStore(ctx, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			if wordsPerFile <= 0 {
				wordsPerFile = cfg.Store.WordsPerFile
			}
			progress, finish := exchange.ProgressBar("export_learned", 0)
			defer finish()
			return exchange.New(s, log).ExportLearned(ctx, wordsPerFile, outDir, progress)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for shard files")
	cmd.Flags().IntVar(&wordsPerFile, "words-per-file", 0,
		"lines per shard file (default: config store.words_per_file)")
	return cmd
}

func getExportFullCmd() *cobra.Command {
	var outDir string
	var wordsPerFile int

	cmd := &cobra.Command{
		Use:   "export-full <language>",
		Short: "Export every word and pattern row, including unlearned prefixes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openStore(ctx, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			if wordsPerFile <= 0 {
				wordsPerFile = cfg.Store.WordsPerFile
			}
			progress, finish := exchange.ProgressBar("export_full", 0)
			defer finish()
			return exchange.New(s, log).ExportFull(ctx, wordsPerFile, outDir, progress)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for shard files")
	cmd.Flags().IntVar(&wordsPerFile, "words-per-file", 0,
		"lines per shard file (default: config store.words_per_file)")
	return cmd
}

func getImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <language> <file>",
		Short: "Import a words or patterns export file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openStore(ctx, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			onFailure := func(raw string) {
				log.Warn("skipping malformed import line", "line", raw)
			}
			return exchange.New(s, log).Import(ctx, args[1], onFailure)
		},
	}
	return cmd
}
