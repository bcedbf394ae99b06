package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varnam/knownwords/pkg/learner"
)

func getLearnCmd() *cobra.Command {
	var patterns []string
	var confidence int

	cmd := &cobra.Command{
		Use:   "learn <language> <word>",
		Short: "Learn a word and its romanized patterns",
		Long: `Learn persists word into the language's store and records each
--pattern value as a learned romanized pattern of it. Each value is
passed as one whole-word alternative, so no prefix patterns are recorded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, word := args[0], args[1]
			if len(patterns) == 0 {
				return fmt.Errorf("at least one --pattern is required")
			}

			ctx := context.Background()
			s, err := openStore(ctx, lang)
			if err != nil {
				return err
			}
			defer s.Close()

			l := learner.New(s, flatRenderer{}, log)
			alt := literalAlternatives(word, patterns)
			if err := l.Learn(ctx, word, alt, confidence); err != nil {
				return err
			}
			fmt.Printf("learned %q (%d pattern(s))\n", word, len(patterns))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&patterns, "pattern", nil,
		"a romanized spelling of the word (repeatable)")
	cmd.Flags().IntVar(&confidence, "confidence", 1,
		"initial confidence if word is new")

	return cmd
}
