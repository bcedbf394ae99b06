package iopgstore

import (
	"context"
	"strings"

	"github.com/varnam/knownwords/pkg/store"
)

// LearnedWordsForExport mirrors internal/iostore's LearnedWordsForExport.
func (s *pgStore) LearnedWordsForExport(ctx context.Context) ([]store.Word, error) {
	rows, err := s.query(ctx, sqlLearnedWordsForExport)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// AllWords mirrors internal/iostore's AllWords.
func (s *pgStore) AllWords(ctx context.Context) ([]store.Word, error) {
	rows, err := s.query(ctx, sqlAllWords)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// AllPatterns mirrors internal/iostore's AllPatterns.
func (s *pgStore) AllPatterns(ctx context.Context) ([]store.Pattern, error) {
	rows, err := s.query(ctx, sqlAllPatterns)
	if err != nil {
		return nil, store.QueryError(err)
	}
	defer rows.Close()

	var patterns []store.Pattern
	for rows.Next() {
		var p store.Pattern
		if err := rows.Scan(&p.Text, &p.WordID, &p.Learned); err != nil {
			return nil, store.ScanError(err)
		}
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ScanError(err)
	}
	return patterns, nil
}

// ImportWord mirrors internal/iostore's ImportWord: learned_on is not
// part of the export format, so imported rows get 0.
func (s *pgStore) ImportWord(ctx context.Context, id int64, text string, confidence int) error {
	_, err := s.exec(ctx, sqlImportWord, id, strings.TrimSpace(text), confidence)
	return err
}

// ImportPattern mirrors internal/iostore's ImportPattern.
func (s *pgStore) ImportPattern(ctx context.Context, wordID int64, pattern string, learned bool) error {
	_, err := s.exec(ctx, sqlImportPattern, strings.ToLower(strings.TrimSpace(pattern)), wordID, learned)
	return err
}
