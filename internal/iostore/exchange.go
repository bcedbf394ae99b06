package iostore

import (
	"context"
	"strings"

	"github.com/varnam/knownwords/pkg/store"
)

// LearnedWordsForExport backs export_learned (spec §4.5): words
// reachable by at least one learned=true pattern, ordered by
// confidence descending.
func (s *sqliteStore) LearnedWordsForExport(ctx context.Context) ([]store.Word, error) {
	q, err := s.stmt(ctx, store.StmtLearnedWordsForExport)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// AllWords backs export_full's words pass, ordered by id.
func (s *sqliteStore) AllWords(ctx context.Context) ([]store.Word, error) {
	q, err := s.stmt(ctx, store.StmtAllWords)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, store.QueryError(err)
	}
	return scanWords(rows)
}

// AllPatterns backs export_full's patterns pass, ordered by
// (word_id, pattern).
func (s *sqliteStore) AllPatterns(ctx context.Context) ([]store.Pattern, error) {
	q, err := s.stmt(ctx, store.StmtAllPatterns)
	if err != nil {
		return nil, err
	}
	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, store.QueryError(err)
	}
	defer rows.Close()

	var patterns []store.Pattern
	for rows.Next() {
		var p store.Pattern
		var learned int
		if err := rows.Scan(&p.Text, &p.WordID, &learned); err != nil {
			return nil, store.ScanError(err)
		}
		p.Learned = learned != 0
		patterns = append(patterns, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.ScanError(err)
	}
	return patterns, nil
}

// ImportWord inserts a word row verbatim for import (spec §4.5),
// ignoring the row if id or text already exists. learned_on is not
// part of the export format, so imported rows get 0.
func (s *sqliteStore) ImportWord(ctx context.Context, id int64, text string, confidence int) error {
	ins, err := s.stmt(ctx, store.StmtImportWord)
	if err != nil {
		return err
	}
	if _, err := ins.ExecContext(ctx, id, strings.TrimSpace(text), confidence); err != nil {
		return store.ExecError(err)
	}
	return nil
}

// ImportPattern inserts a pattern row verbatim for import, ignoring
// the row if the (pattern, word_id) pair already exists.
func (s *sqliteStore) ImportPattern(ctx context.Context, wordID int64, pattern string, learned bool) error {
	ins, err := s.stmt(ctx, store.StmtImportPattern)
	if err != nil {
		return err
	}
	l := 0
	if learned {
		l = 1
	}
	if _, err := ins.ExecContext(ctx, strings.ToLower(strings.TrimSpace(pattern)), wordID, l); err != nil {
		return store.ExecError(err)
	}
	return nil
}
