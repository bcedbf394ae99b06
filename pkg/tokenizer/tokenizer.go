// Package tokenizer implements the prefix tokenizer (C3): given a
// romanized input string, it finds the longest prefix matched by the
// patterns table, expands matches into token sequences via the
// external symbol tokenizer, and appends a literal tokenization of the
// remainder (spec §4.3).
//
// This is the *live* variant only. The source contains a richer,
// commented-out continuation variant that keeps walking past the first
// failed-match point; it is not shipped here (spec §4.3's Open
// Question, recorded in DESIGN.md).
package tokenizer

import (
	"context"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
	"github.com/varnam/knownwords/pkg/token"
)

// Tokenizer finds learned prefixes of an input string and expands them
// via a token.Symbolizer. Not safe for concurrent use.
type Tokenizer struct {
	lookup     store.TokenLookup
	symbolizer token.Symbolizer
}

// New creates a Tokenizer backed by lookup (typically a store.Store)
// and symbolizer (the external symbol_tokenize collaborator).
func New(lookup store.TokenLookup, symbolizer token.Symbolizer) *Tokenizer {
	return &Tokenizer{lookup: lookup, symbolizer: symbolizer}
}

// Tokenize implements spec §4.3's algorithm. It returns at most 3
// alternative token sequences (O1); if the store has no matching
// prefix, it returns an empty result and the caller is expected to
// fall back to plain symbol tokenization of p (O3).
func (t *Tokenizer) Tokenize(ctx context.Context, p string) ([][]token.Token, error) {
	if p == "" || t.lookup == nil {
		return nil, nil
	}

	var (
		matchPos int
		matches  []string
	)

	buf := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		buf = append(buf, p[i])
		l := string(buf)

		words, err := t.lookup.PatternWords(ctx, l, config.PatternLookupCapPerStep)
		if err != nil {
			return nil, err
		}
		if len(words) > 0 {
			matchPos = i + 1
			matches = words
		}

		canGoLonger, err := t.lookup.CanMatchLonger(ctx, l)
		if err != nil {
			return nil, err
		}
		if !canGoLonger {
			break
		}
	}

	if len(matches) == 0 {
		return nil, nil
	}

	var result [][]token.Token
	for _, m := range matches {
		tokensM, err := t.symbolizer.Tokenize(ctx, m, token.TokenizerValue, token.MatchExact)
		if err != nil {
			return nil, err
		}
		firsts := firstElements(tokensM)

		if result == nil {
			result = append(result, firsts)
		} else {
			for i := range result {
				result[i] = append(result[i], firsts...)
			}
		}
	}

	remainder := p[matchPos:]
	if remainder != "" {
		tokensRem, err := t.symbolizer.Tokenize(ctx, remainder, token.TokenizerPattern, token.MatchExact)
		if err != nil {
			return nil, err
		}
		firsts := firstElements(tokensRem)
		for i := range result {
			result[i] = append(result[i], firsts...)
		}
	}

	return result, nil
}

// firstElements takes the first element of each inner alternative-list,
// per spec §4.3 step 5's "first elements of each inner list" rule.
func firstElements(tokens [][]token.Token) []token.Token {
	firsts := make([]token.Token, 0, len(tokens))
	for _, alt := range tokens {
		if len(alt) == 0 {
			continue
		}
		firsts = append(firsts, alt[0])
	}
	return firsts
}
