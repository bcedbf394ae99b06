package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varnam/knownwords/pkg/exchange"
	"github.com/varnam/knownwords/pkg/query"
)

func getBestMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best-match <language> <input>",
		Short: "Find the highest-confidence exact match for input",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(args[0], args[1], false)
		},
	}
}

func getSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <language> <input>",
		Short: "Suggest words reachable by a longer learned pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(args[0], args[1], true)
		},
	}
}

func runMatch(lang, input string, suggestions bool) error {
	ctx := context.Background()
	s, err := openStore(ctx, lang)
	if err != nil {
		return err
	}
	defer s.Close()

	surface := query.New(s)

	var matches []query.Match
	if suggestions {
		matches, err = surface.Suggestions(ctx, input)
	} else {
		matches, err = surface.BestMatch(ctx, input)
	}
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, m := range matches {
		fmt.Printf("%s\t%d\n", m.Word, m.Confidence)
	}
	return nil
}

func getDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <language> <word>",
		Short: "Delete a learned word and its patterns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openStore(ctx, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			if err := query.New(s).DeleteWord(ctx, args[1]); err != nil {
				return err
			}
			fmt.Printf("deleted %q\n", args[1])
			return nil
		},
	}
}

func getStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <language>",
		Short: "Show word and pattern counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openStore(ctx, args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := query.New(s).GetStats(ctx)
			if err != nil {
				return err
			}
			fmt.Println(exchange.FormatStats(stats))
			return nil
		},
	}
}
