package learner_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varnam/knownwords/internal/iostore"
	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/learner"
	"github.com/varnam/knownwords/pkg/store"
	"github.com/varnam/knownwords/pkg/token"
)

// concatRenderer renders a token slice by concatenating each token's
// Value, the way a real renderer would for a run of Ordinary tokens.
type concatRenderer struct{}

func (concatRenderer) Render(ctx context.Context, tokens []token.Token) (token.Rendered, error) {
	var text string
	for _, t := range tokens {
		text += t.Value
	}
	return token.Rendered{Text: text, ConfidenceHint: 1}, nil
}

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := iostore.Open(context.Background(), ":memory:", config.ModeMixed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tok(pattern string) token.Token {
	return token.Token{Pattern: pattern, Value: pattern, Kind: token.Ordinary}
}

func TestLearn_RejectsEmptyWord(t *testing.T) {
	s := openTestStore(t)
	l := learner.New(s, concatRenderer{}, nil)

	err := l.Learn(context.Background(), "", [][]token.Token{{tok("a")}}, 1)
	assert.Error(t, err)
}

func TestLearn_RejectsEmptyDecomposition(t *testing.T) {
	s := openTestStore(t)
	l := learner.New(s, concatRenderer{}, nil)

	err := l.Learn(context.Background(), "amma", nil, 1)
	assert.Error(t, err)

	err = l.Learn(context.Background(), "amma", [][]token.Token{{}}, 1)
	assert.Error(t, err)
}

func TestLearn_FullPatternsAreLearnedAndQueryable(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	l := learner.New(s, concatRenderer{}, nil)

	// Two full-pattern alternatives sharing the "am" prefix (m=2, k=3).
	alt := [][]token.Token{
		{tok("a")},
		{tok("m")},
		{tok("a"), tok("aa")},
	}

	require.NoError(t, l.Learn(ctx, "amma", alt, 3))

	wordID, err := s.WordIDOf(ctx, "amma")
	require.NoError(t, err)
	assert.NotEqual(t, store.WordNotFoundSentinel, wordID)

	matches, err := s.BestMatch(ctx, "ama", 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "amma", matches[0].Text)

	matches, err = s.BestMatch(ctx, "amaa", 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "amma", matches[0].Text)
}

func TestLearn_PrefixIsLearnedOnceAndNeverSatisfiesBestMatch(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	l := learner.New(s, concatRenderer{}, nil)

	alt := [][]token.Token{
		{tok("a")},
		{tok("m")},
		{tok("a"), tok("aa")},
	}
	require.NoError(t, l.Learn(ctx, "amma", alt, 3))

	prefixID, err := s.WordIDOf(ctx, "am")
	require.NoError(t, err)
	assert.NotEqual(t, store.WordNotFoundSentinel, prefixID, "the shared m=2 prefix must be learned as its own word")

	matches, err := s.BestMatch(ctx, "am", 5)
	require.NoError(t, err)
	assert.Empty(t, matches, "a prefix-only pattern must never satisfy best_match")

	wordCount, err := s.WordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, wordCount, "the full word and its one distinct prefix")

	patternCount, err := s.PatternCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, patternCount, "two full patterns + one prefix pattern")
}

func TestLearn_TwoTokenTupleHasNoPrefixes(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	l := learner.New(s, concatRenderer{}, nil)

	alt := [][]token.Token{
		{tok("a")},
		{tok("m")},
	}
	require.NoError(t, l.Learn(ctx, "am", alt, 1))

	wordCount, err := s.WordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, wordCount, "k=2 tuples have no m in [2,k-1], so no prefix words are learned")
}

func TestLearn_CapsAtMaxPatternsPerWord(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	l := learner.New(s, concatRenderer{}, nil)

	// 1 position x (MaxPatternsPerWord+10) distinct alternatives would
	// overflow the cap; the walk must stop at config.MaxPatternsPerWord
	// full patterns rather than enumerating the whole product.
	alts := make([]token.Token, config.MaxPatternsPerWord+10)
	for i := range alts {
		alts[i] = tok(fmt.Sprintf("p%d", i))
	}
	alt := [][]token.Token{alts}

	require.NoError(t, l.Learn(ctx, "x", alt, 1))

	patternCount, err := s.PatternCount(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, patternCount, config.MaxPatternsPerWord)
}
