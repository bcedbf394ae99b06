package iostore

import (
	"context"

	"github.com/varnam/knownwords/pkg/store"
)

// PatternWords implements the prefix tokenizer's step-3 exact lookup
// (spec §4.3): up to limit word texts whose pattern equals l.
func (s *sqliteStore) PatternWords(ctx context.Context, l string, limit int) ([]string, error) {
	q, err := s.stmt(ctx, store.StmtExactPatternLookup)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, l, limit)
	if err != nil {
		return nil, store.QueryError(err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, store.ScanError(err)
		}
		words = append(words, text)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ScanError(err)
	}
	return words, nil
}

// CanMatchLonger implements the prefix tokenizer's step-4 range check
// (spec §4.3): whether any pattern > l AND <= l||"z" exists.
func (s *sqliteStore) CanMatchLonger(ctx context.Context, l string) (bool, error) {
	q, err := s.stmt(ctx, store.StmtPatternRangeExists)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := q.QueryRowContext(ctx, l, l+"z").Scan(&exists); err != nil {
		return false, store.QueryError(err)
	}
	return exists, nil
}
