package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varnam/knownwords/internal/iostore"
	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/query"
	"github.com/varnam/knownwords/pkg/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := iostore.Open(context.Background(), ":memory:", config.ModeMixed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBestMatch_BelowMinLengthReturnsEmptyWithoutTouchingStore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	// "am" is a learned full pattern, so only the length shortcut can
	// keep it out of the result.
	id, _, err := s.LearnWord(ctx, "am", 1)
	require.NoError(t, err)
	require.NoError(t, s.InsertPattern(ctx, "am", id, false))

	matches, err := q.BestMatch(ctx, "am")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestBestMatch_ReturnsLearnedWord(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	id, _, err := s.LearnWord(ctx, "amma", 4)
	require.NoError(t, err)
	require.NoError(t, s.InsertPattern(ctx, "amma", id, false))

	matches, err := q.BestMatch(ctx, "amma")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "amma", matches[0].Word)
	assert.Equal(t, 4, matches[0].Confidence)
}

func TestSuggestions_BelowMinLengthReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	sugg, err := q.Suggestions(ctx, "am")
	require.NoError(t, err)
	assert.Empty(t, sugg)
}

func TestSuggestions_ReturnsLongerLearnedWords(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	id, _, err := s.LearnWord(ctx, "amma", 2)
	require.NoError(t, err)
	require.NoError(t, s.InsertPattern(ctx, "amma", id, false))

	sugg, err := q.Suggestions(ctx, "amm")
	require.NoError(t, err)
	require.Len(t, sugg, 1)
	assert.Equal(t, "amma", sugg[0].Word)
}

func TestDeleteWord_TrimsWhitespaceAndRemoves(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	_, _, err := s.LearnWord(ctx, "amma", 1)
	require.NoError(t, err)

	require.NoError(t, q.DeleteWord(ctx, "  amma  "))

	id, err := q.WordIDOf(ctx, "amma")
	require.NoError(t, err)
	assert.Equal(t, store.WordNotFoundSentinel, id)
}

func TestDeleteWord_UnknownWordErrors(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	err := q.DeleteWord(ctx, "nosuchword")
	assert.Error(t, err)
}

func TestWordIDOf_TrimsWhitespace(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	id, _, err := s.LearnWord(ctx, "amma", 1)
	require.NoError(t, err)

	gotID, err := q.WordIDOf(ctx, " amma ")
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestGetStats_ReportsWordAndPatternCounts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	q := query.New(s)

	id, _, err := s.LearnWord(ctx, "amma", 1)
	require.NoError(t, err)
	require.NoError(t, s.InsertPattern(ctx, "amma", id, false))
	require.NoError(t, s.InsertPattern(ctx, "am", id, true))

	stats, err := q.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WordCount)
	assert.Equal(t, 2, stats.PatternCount)
}
