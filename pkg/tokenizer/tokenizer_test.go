package tokenizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varnam/knownwords/pkg/tokenizer"
	"github.com/varnam/knownwords/pkg/token"
)

// fakeLookup canns exact-match word lists and "can go longer" answers
// keyed by the prefix walked so far.
type fakeLookup struct {
	words      map[string][]string
	canExtend  map[string]bool
	sawQueries []string
}

func (f *fakeLookup) PatternWords(ctx context.Context, l string, limit int) ([]string, error) {
	f.sawQueries = append(f.sawQueries, "words:"+l)
	return f.words[l], nil
}

func (f *fakeLookup) CanMatchLonger(ctx context.Context, l string) (bool, error) {
	f.sawQueries = append(f.sawQueries, "longer:"+l)
	return f.canExtend[l], nil
}

// fakeSymbolizer returns a canned token decomposition for each exact
// text it's asked to tokenize.
type fakeSymbolizer struct {
	decompositions map[string][][]token.Token
}

func (f *fakeSymbolizer) Tokenize(ctx context.Context, text string, tk token.TokenizerKind, mk token.MatchKind) ([][]token.Token, error) {
	return f.decompositions[text], nil
}

func tok(s string) token.Token {
	return token.Token{Pattern: s, Value: s, Kind: token.Ordinary}
}

func TestTokenize_EmptyInputReturnsNil(t *testing.T) {
	tz := tokenizer.New(&fakeLookup{}, &fakeSymbolizer{})
	result, err := tz.Tokenize(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTokenize_NoMatchReturnsNil(t *testing.T) {
	lookup := &fakeLookup{
		words:     map[string][]string{},
		canExtend: map[string]bool{"a": true, "am": false},
	}
	tz := tokenizer.New(lookup, &fakeSymbolizer{})

	result, err := tz.Tokenize(context.Background(), "am")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTokenize_SingleMatchPlusRemainder(t *testing.T) {
	lookup := &fakeLookup{
		words: map[string][]string{
			"am": {"amma"},
		},
		canExtend: map[string]bool{
			"a":  true,
			"am": false,
		},
	}
	sym := &fakeSymbolizer{
		decompositions: map[string][][]token.Token{
			"amma": {{tok("A")}},
			"bc":   {{tok("B")}, {tok("C")}},
		},
	}
	tz := tokenizer.New(lookup, sym)

	result, err := tz.Tokenize(context.Background(), "ambc")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []token.Token{tok("A"), tok("B"), tok("C")}, result[0])
}

func TestTokenize_StopsWalkingWhenNoLongerMatchPossible(t *testing.T) {
	lookup := &fakeLookup{
		words: map[string][]string{
			"am": {"amma"},
		},
		canExtend: map[string]bool{
			"a":  true,
			"am": false, // walk must stop here, never query "amb"
		},
	}
	sym := &fakeSymbolizer{
		decompositions: map[string][][]token.Token{
			"amma": {{tok("A")}},
			"b":    {{tok("B")}},
		},
	}
	tz := tokenizer.New(lookup, sym)

	_, err := tz.Tokenize(context.Background(), "amb")
	require.NoError(t, err)

	for _, q := range lookup.sawQueries {
		assert.NotEqual(t, "words:amb", q)
		assert.NotEqual(t, "longer:amb", q)
	}
}

func TestTokenize_MultipleMatchesAppendElementWise(t *testing.T) {
	lookup := &fakeLookup{
		words: map[string][]string{
			"am": {"amma", "amme"},
		},
		canExtend: map[string]bool{
			"a":  true,
			"am": false,
		},
	}
	sym := &fakeSymbolizer{
		decompositions: map[string][][]token.Token{
			"amma": {{tok("A1")}},
			"amme": {{tok("A2")}},
		},
	}
	tz := tokenizer.New(lookup, sym)

	result, err := tz.Tokenize(context.Background(), "am")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []token.Token{tok("A1"), tok("A2")}, result[0])
}

func TestTokenize_NilLookupReturnsNil(t *testing.T) {
	tz := tokenizer.New(nil, &fakeSymbolizer{})
	result, err := tz.Tokenize(context.Background(), "am")
	require.NoError(t, err)
	assert.Nil(t, result)
}
