// Package token defines the token shapes the known-words store exchanges
// with its two external collaborators: the symbol tokenizer and the
// renderer. Neither collaborator is implemented here — the scheme
// compilation toolchain that backs them is out of scope for this module.
package token

import "context"

// Kind distinguishes tokens that contribute to a word's rendered text from
// those that also contribute to its pattern text. Joiners and non-joiners
// render but are dropped when concatenating pattern strings (spec I5,
// "Joiners" design note).
type Kind int

const (
	Ordinary Kind = iota
	Joiner
	NonJoiner
)

// Token is the atomic unit produced by the symbol tokenizer.
type Token struct {
	// Pattern is the romanized fragment. Empty for Joiner/NonJoiner tokens
	// when concatenated into a pattern string.
	Pattern string
	// Value is the native-script fragment.
	Value string
	Kind   Kind
}

// TokenizerKind selects which side of a Token the tokenizer matches
// against: the romanized pattern or the native-script value.
type TokenizerKind int

const (
	TokenizerPattern TokenizerKind = iota
	TokenizerValue
)

// MatchKind selects whether the tokenizer requires an exact match or also
// returns partial/possibility matches.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPossibility
)

// Symbolizer is the `symbol_tokenize` collaborator from spec.md §6. Given
// text it returns a list of alternative-lists of tokens: result[i] is the
// set of interchangeable tokens at position i.
type Symbolizer interface {
	Tokenize(ctx context.Context, text string, tk TokenizerKind, mk MatchKind) ([][]Token, error)
}

// Rendered is what the `render` collaborator returns for a chosen token
// sequence.
type Rendered struct {
	Text           string
	ConfidenceHint int
}

// Renderer is the `render` collaborator from spec.md §6.
type Renderer interface {
	Render(ctx context.Context, tokens []Token) (Rendered, error)
}

// Pattern concatenates the pattern fragments of tokens, skipping joiners
// and non-joiners as required by spec I5 and the "Joiners" design note.
func Pattern(tokens []Token) string {
	var b []byte
	for _, t := range tokens {
		if t.Kind == Joiner || t.Kind == NonJoiner {
			continue
		}
		b = append(b, t.Pattern...)
	}
	return string(b)
}
