package iopgstore

import (
	"context"

	"github.com/varnam/knownwords/pkg/store"
)

// PatternWords mirrors internal/iostore's PatternWords.
func (s *pgStore) PatternWords(ctx context.Context, l string, limit int) ([]string, error) {
	rows, err := s.query(ctx, sqlExactPatternLookup, l, limit)
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

// CanMatchLonger mirrors internal/iostore's CanMatchLonger.
func (s *pgStore) CanMatchLonger(ctx context.Context, l string) (bool, error) {
	var exists bool
	if err := s.queryRow(ctx, sqlPatternRangeExists, l, l+"z").Scan(&exists); err != nil {
		return false, store.QueryError(err)
	}
	return exists, nil
}
