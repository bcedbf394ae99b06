// Package query implements the Query Surface (C4): best_match,
// suggestions, delete_word, word_id_of, plus the SUPPLEMENTED Stats
// surface (spec §4.4; original_source/words-table.c's count helpers).
package query

import (
	"context"
	"strings"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
)

// Surface is a thin façade over store.Store applying the shortcuts and
// caps spec §4.4 requires.
type Surface struct {
	store store.Store
}

// New creates a Surface over s.
func New(s store.Store) *Surface {
	return &Surface{store: s}
}

// Match pairs a word's text with its confidence, the shape best_match
// and suggestions return.
type Match struct {
	Word       string
	Confidence int
}

// BestMatch returns words whose pattern equals lower(input), capped at
// config.BestMatchResultCap, ordered by confidence descending. Returns
// empty when len(input) < config.MinInputLenForSuggestion (P6).
func (q *Surface) BestMatch(ctx context.Context, input string) ([]Match, error) {
	if len(input) < config.MinInputLenForSuggestion {
		return nil, nil
	}
	words, err := q.store.BestMatch(ctx, input, config.BestMatchResultCap)
	if err != nil {
		return nil, err
	}
	return toMatches(words), nil
}

// Suggestions returns words reachable by a learned pattern strictly
// longer than, and prefixed by, lower(input), capped at
// config.SuggestionResultCap. Returns empty when len(input) <
// config.MinInputLenForSuggestion (P6).
func (q *Surface) Suggestions(ctx context.Context, input string) ([]Match, error) {
	if len(input) < config.MinInputLenForSuggestion {
		return nil, nil
	}
	words, err := q.store.Suggestions(ctx, input, config.SuggestionResultCap)
	if err != nil {
		return nil, err
	}
	return toMatches(words), nil
}

// DeleteWord removes text and its patterns. Fails with
// errcode.WordNotFoundError if text is unknown.
func (q *Surface) DeleteWord(ctx context.Context, text string) error {
	return q.store.DeleteWord(ctx, strings.TrimSpace(text))
}

// WordIDOf resolves text to its id, or store.WordNotFoundSentinel.
func (q *Surface) WordIDOf(ctx context.Context, text string) (int64, error) {
	return q.store.WordIDOf(ctx, strings.TrimSpace(text))
}

// Stats is the SUPPLEMENTED word/pattern count surface: the original's
// get_all_words_count/get_all_patterns_count, exposed standalone
// rather than only as an export-progress sizing detail.
type Stats struct {
	WordCount    int
	PatternCount int
}

// GetStats reports the current word and pattern counts.
func (q *Surface) GetStats(ctx context.Context) (Stats, error) {
	words, err := q.store.WordCount(ctx)
	if err != nil {
		return Stats{}, err
	}
	patterns, err := q.store.PatternCount(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{WordCount: words, PatternCount: patterns}, nil
}

func toMatches(words []store.Word) []Match {
	if len(words) == 0 {
		return nil
	}
	matches := make([]Match, len(words))
	for i, w := range words {
		matches[i] = Match{Word: w.Text, Confidence: w.Confidence}
	}
	return matches
}
