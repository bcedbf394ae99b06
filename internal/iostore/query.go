package iostore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/varnam/knownwords/pkg/store"
)

// WordIDOf resolves text to its id via the last-learned shortcut
// first, then the store (spec §4.4).
func (s *sqliteStore) WordIDOf(ctx context.Context, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if s.last.set && s.last.text == text {
		return s.last.id, nil
	}
	return s.wordIDOfUncached(ctx, text)
}

func scanWords(rows *sql.Rows) ([]store.Word, error) {
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

// BestMatch implements spec §4.4: patterns.pattern = lower(input) AND
// learned=true, ordered by confidence descending, capped at limit.
func (s *sqliteStore) BestMatch(ctx context.Context, input string, limit int) ([]store.Word, error) {
	q, err := s.stmt(ctx, store.StmtBestMatch)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, strings.ToLower(input), limit)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// Suggestions implements spec §4.4's prefix-range query: pattern >
// lower(input) AND pattern <= lower(input)||'z' AND learned=true,
// de-duplicated by word, capped at limit.
func (s *sqliteStore) Suggestions(ctx context.Context, input string, limit int) ([]store.Word, error) {
	lower := strings.ToLower(input)
	q, err := s.stmt(ctx, store.StmtSuggestions)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx, lower, lower+"z", limit)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// DeleteWord resolves text to an id, deletes its patterns then its
// word row, transactionally (spec §4.4). Fails with WordNotFoundError
// if text is unknown.
func (s *sqliteStore) DeleteWord(ctx context.Context, text string) error {
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

	delPatterns, err := s.stmt(ctx, store.StmtDeleteWordPatterns)
	if err != nil {
		if ownTx {
			s.Rollback(ctx)
		}
		return err
	}
	if _, err := delPatterns.ExecContext(ctx, id); err != nil {
		if ownTx {
			s.Rollback(ctx)
		}
		return store.ExecError(err)
	}

	delWord, err := s.stmt(ctx, store.StmtDeleteWord)
	if err != nil {
		if ownTx {
			s.Rollback(ctx)
		}
		return err
	}
	if _, err := delWord.ExecContext(ctx, id); err != nil {
		if ownTx {
			s.Rollback(ctx)
		}
		return store.ExecError(err)
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
func (s *sqliteStore) WordCount(ctx context.Context) (int, error) {
	q, err := s.stmt(ctx, store.StmtWordCount)
	if err != nil {
		return 0, err
	}
	var n int
	if err := q.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, store.QueryError(err)
	}
	return n, nil
}

func (s *sqliteStore) PatternCount(ctx context.Context) (int, error) {
	q, err := s.stmt(ctx, store.StmtPatternCount)
	if err != nil {
		return 0, err
	}
	var n int
	if err := q.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, store.QueryError(err)
	}
	return n, nil
}
