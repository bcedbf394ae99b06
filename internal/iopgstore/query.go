package iopgstore

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/varnam/knownwords/pkg/store"
)

// WordIDOf mirrors internal/iostore's WordIDOf.
func (s *pgStore) WordIDOf(ctx context.Context, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if s.last.set && s.last.text == text {
		return s.last.id, nil
	}
	return s.wordIDOfUncached(ctx, text)
}

func scanWords(rows pgx.Rows) ([]store.Word, error) {
	defer rows.Close()
	var words []store.Word
	for rows.Next() {
		var w store.Word
		if err := rows.Scan(&w.ID, &w.Text, &w.Confidence, &w.LearnedOn); err != nil {
			return nil, store.ScanError(err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ScanError(err)
	}
	return words, nil
}

// BestMatch mirrors internal/iostore's BestMatch.
func (s *pgStore) BestMatch(ctx context.Context, input string, limit int) ([]store.Word, error) {
	rows, err := s.query(ctx, sqlBestMatch, strings.ToLower(input), limit)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// Suggestions mirrors internal/iostore's Suggestions.
func (s *pgStore) Suggestions(ctx context.Context, input string, limit int) ([]store.Word, error) {
	lower := strings.ToLower(input)
	rows, err := s.query(ctx, sqlSuggestions, lower, lower+"z", limit)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// DeleteWord mirrors internal/iostore's DeleteWord.
func (s *pgStore) DeleteWord(ctx context.Context, text string) error {
	id, err := s.WordIDOf(ctx, text)
	if err != nil {
		return err
	}
	if id == store.WordNotFoundSentinel {
		return store.WordNotFoundError(text)
	}

	ownTx := s.tx == nil
	if ownTx {
		if err := s.Begin(ctx); err != nil {
			return err
		}
	}

	if _, err := s.exec(ctx, sqlDeleteWordPatterns, id); err != nil {
		if ownTx {
			s.Rollback(ctx)
		}
		return err
	}
	if _, err := s.exec(ctx, sqlDeleteWord, id); err != nil {
		if ownTx {
			s.Rollback(ctx)
		}
		return err
	}

	if s.last.set && s.last.id == id {
		s.last = lastLearned{}
	}

	if ownTx {
		return s.Commit(ctx)
	}
	return nil
}

// WordCount and PatternCount back the SUPPLEMENTED Stats surface.
func (s *pgStore) WordCount(ctx context.Context) (int, error) {
	var n int
	if err := s.queryRow(ctx, sqlWordCount).Scan(&n); err != nil {
		return 0, store.QueryError(err)
	}
	return n, nil
}

func (s *pgStore) PatternCount(ctx context.Context) (int, error) {
	var n int
	if err := s.queryRow(ctx, sqlPatternCount).Scan(&n); err != nil {
		return 0, store.QueryError(err)
	}
	return n, nil
}
