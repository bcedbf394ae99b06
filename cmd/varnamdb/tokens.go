package main

import (
	"context"

	"github.com/varnam/knownwords/pkg/token"
)

// flatRenderer is the CLI's stand-in for the scheme system's real
// renderer (out of scope per spec.md §1): it renders a token sequence
// by concatenating each token's Value, the way a real renderer would
// for a run of Ordinary tokens.
type flatRenderer struct{}

func (flatRenderer) Render(ctx context.Context, tokens []token.Token) (token.Rendered, error) {
	var text string
	for _, t := range tokens {
		text += t.Value
	}
	return token.Rendered{Text: text, ConfidenceHint: 1}, nil
}

// literalAlternatives turns one or more --pattern flag values into the
// [][]token.Token shape Learn expects: one single-token alternative
// per supplied romanization, all sharing the word's native-script
// Value. This stands in for the real symbol tokenizer (out of scope
// per spec.md §1) for manual CLI testing.
func literalAlternatives(word string, patterns []string) [][]token.Token {
	alt := make([][]token.Token, 0, 1)
	toks := make([]token.Token, 0, len(patterns))
	for _, p := range patterns {
		toks = append(toks, token.Token{Pattern: p, Value: word, Kind: token.Ordinary})
	}
	alt = append(alt, toks)
	return alt
}
