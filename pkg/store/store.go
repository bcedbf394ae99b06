// Package store defines the durable two-table associative store that
// backs the known-words learning engine: a Word keyed by its canonical
// text, and the Patterns (romanized spellings) that resolve to it.
//
// Store is a port: internal/iostore implements it over SQLite,
// internal/iopgstore implements it over PostgreSQL. Callers that only
// need learn/lookup/export semantics should depend on this interface,
// not on either backend.
package store

import "context"

// Word is a learned native-script string.
type Word struct {
	// ID is the stable monotonic identifier assigned on first insert.
	ID int64
	// Text is the canonical native-script string, trimmed, unique.
	Text string
	// Confidence is a non-negative counter bumped on re-sighting.
	Confidence int
	// LearnedOn is the wall-clock time, in seconds since epoch, the word
	// was first inserted. Not updated on confidence bumps.
	LearnedOn int64
}

// Pattern is a romanized spelling that resolves to a Word.
type Pattern struct {
	// Text is the romanized form, trimmed and lower-cased.
	Text string
	// WordID is the Word this pattern resolves to.
	WordID int64
	// Learned is true once this pair has been inserted as the full
	// pattern of WordID at least once. False means "prefix only".
	Learned bool
}

// WordNotFoundSentinel is returned by WordIDOf when no word matches.
const WordNotFoundSentinel int64 = -1

// Store owns a connection to the persistent key-value database and the
// prepared-query cache built on top of it. A Store is not safe for
// concurrent use: callers serialize access to one handle themselves, or
// own one handle per goroutine (spec §5).
type Store interface {
	// Begin starts a transaction. Commit or Rollback must be called
	// exactly once per Begin.
	Begin(ctx context.Context) error
	// Commit commits the current transaction.
	Commit(ctx context.Context) error
	// Rollback aborts the current transaction.
	Rollback(ctx context.Context) error

	// BeginBulk relaxes durability guarantees for a large run of writes.
	// It is a performance hint only; correctness never depends on it.
	BeginBulk(ctx context.Context) error
	// EndBulk ends bulk mode. Per the source this preserves, EndBulk does
	// not restore the pragmas BeginBulk relaxed.
	EndBulk(ctx context.Context) error

	// LearnWord inserts a new Word at the given confidence, or bumps the
	// confidence of the existing row matching text by exactly 1. It
	// returns the word's id and whether this call performed an insert
	// (as opposed to an update).
	LearnWord(ctx context.Context, text string, confidence int) (id int64, inserted bool, err error)

	// InsertPattern records pattern against wordID. If isPrefix is
	// false, the pair is additionally marked learned=true
	// (monotonically: never cleared by a later prefix-only insert).
	InsertPattern(ctx context.Context, pattern string, wordID int64, isPrefix bool) error

	// WordIDOf resolves text to its id, or WordNotFoundSentinel.
	WordIDOf(ctx context.Context, text string) (int64, error)

	// BestMatch returns words whose pattern equals lower(input) with
	// learned=true, ordered by confidence descending, capped by the
	// caller.
	BestMatch(ctx context.Context, input string, limit int) ([]Word, error)

	// Suggestions returns words reachable by a learned pattern strictly
	// longer than, and prefixed by, lower(input), ordered by confidence
	// descending, de-duplicated by word text, capped by the caller.
	Suggestions(ctx context.Context, input string, limit int) ([]Word, error)

	// DeleteWord removes text's patterns then its word row,
	// transactionally. Returns errcode.WordNotFoundError if text is
	// unknown.
	DeleteWord(ctx context.Context, text string) error

	// WordCount and PatternCount back the SUPPLEMENTED Stats surface.
	WordCount(ctx context.Context) (int, error)
	PatternCount(ctx context.Context) (int, error)

	// LearnedWordsForExport streams words reachable by at least one
	// learned=true pattern, ordered by confidence descending, for
	// export_learned.
	LearnedWordsForExport(ctx context.Context) ([]Word, error)
	// AllWords and AllPatterns back export_full's two passes, ordered
	// by id / (word_id, pattern) respectively.
	AllWords(ctx context.Context) ([]Word, error)
	AllPatterns(ctx context.Context) ([]Pattern, error)

	// ImportWord inserts a word row verbatim (id, text, confidence) for
	// import, ignoring the row if id or text already exists.
	ImportWord(ctx context.Context, id int64, text string, confidence int) error
	// ImportPattern inserts a pattern row verbatim for import, ignoring
	// the row if the (pattern, word_id) pair already exists.
	ImportPattern(ctx context.Context, wordID int64, pattern string, learned bool) error

	// Compact is a deliberate no-op, mirroring the source's
	// vwt_compact_file.
	Compact(ctx context.Context) error

	// Close finalizes every prepared statement and closes the
	// underlying connection.
	Close() error

	TokenLookup
}

// TokenLookup is the subset of Store the prefix tokenizer (C3)
// consults: the exact-match and "could a longer pattern still match"
// queries from spec §4.3 steps 3-4.
type TokenLookup interface {
	// PatternWords returns up to limit word texts whose pattern equals
	// l exactly.
	PatternWords(ctx context.Context, l string, limit int) ([]string, error)
	// CanMatchLonger reports whether any pattern p satisfies l < p <=
	// l+"z" — i.e. whether walking one more byte could still match.
	CanMatchLonger(ctx context.Context, l string) (bool, error)
}
