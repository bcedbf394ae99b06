package iostore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
)

// LearnWord persists W into words (spec §4.2): a new row at the
// supplied confidence, or the existing row's confidence bumped by
// exactly 1 — never set to the supplied value on update. Mode is
// selected by the handle's config.LearnMode; the end state is
// identical either way, mode only affects throughput.
func (s *sqliteStore) LearnWord(ctx context.Context, text string, confidence int) (int64, bool, error) {
	text = strings.TrimSpace(text)
	s.last = lastLearned{}

	var id int64
	var inserted bool
	var err error

	if s.mode == config.ModeMostlyNew {
		id, inserted, err = s.learnWordMostlyNew(ctx, text, confidence)
	} else {
		id, inserted, err = s.learnWordMixed(ctx, text, confidence)
	}
	if err != nil {
		return 0, false, err
	}

	if inserted {
		s.last = lastLearned{text: text, id: id, set: true}
	}
	return id, inserted, nil
}

// learnWordMixed attempts UPDATE confidence+=1 first; INSERT on zero
// rows affected.
func (s *sqliteStore) learnWordMixed(ctx context.Context, text string, confidence int) (int64, bool, error) {
	upd, err := s.stmt(ctx, store.StmtUpdateWordConfidence)
	if err != nil {
		return 0, false, err
	}
	res, err := upd.ExecContext(ctx, text)
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	if affected > 0 {
		id, err := s.wordIDOfUncached(ctx, text)
		return id, false, err
	}

	ins, err := s.stmt(ctx, store.StmtInsertWord)
	if err != nil {
		return 0, false, err
	}
	res, err = ins.ExecContext(ctx, text, confidence, time.Now().Unix())
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	return id, true, nil
}

// learnWordMostlyNew attempts INSERT ... ON CONFLICT IGNORE first;
// falls back to UPDATE confidence+=1 on zero rows inserted.
func (s *sqliteStore) learnWordMostlyNew(ctx context.Context, text string, confidence int) (int64, bool, error) {
	ins, err := s.stmt(ctx, store.StmtInsertWordIgnore)
	if err != nil {
		return 0, false, err
	}
	res, err := ins.ExecContext(ctx, text, confidence, time.Now().Unix())
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	if affected > 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, false, store.ExecError(err)
		}
		return id, true, nil
	}

	upd, err := s.stmt(ctx, store.StmtUpdateWordConfidence)
	if err != nil {
		return 0, false, err
	}
	if _, err := upd.ExecContext(ctx, text); err != nil {
		return 0, false, store.ExecError(err)
	}
	id, err := s.wordIDOfUncached(ctx, text)
	return id, false, err
}

func (s *sqliteStore) wordIDOfUncached(ctx context.Context, text string) (int64, error) {
	q, err := s.stmt(ctx, store.StmtWordIDOf)
	if err != nil {
		return 0, err
	}
	var id int64
	err = q.QueryRowContext(ctx, text).Scan(&id)
	if err == sql.ErrNoRows {
		return store.WordNotFoundSentinel, nil
	}
	if err != nil {
		return 0, store.QueryError(err)
	}
	return id, nil
}

// InsertPattern implements spec §4.2's insert_pattern: INSERT OR
// IGNORE, then (unless isPrefix) a second statement that marks the
// pair learned=true, enforcing I3's monotonicity.
func (s *sqliteStore) InsertPattern(ctx context.Context, pattern string, wordID int64, isPrefix bool) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	ins, err := s.stmt(ctx, store.StmtInsertPattern)
	if err != nil {
		return err
	}
	if _, err := ins.ExecContext(ctx, pattern, wordID); err != nil {
		return store.ExecError(err)
	}

	if isPrefix {
		return nil
	}

	mark, err := s.stmt(ctx, store.StmtMarkPatternLearned)
	if err != nil {
		return err
	}
	if _, err := mark.ExecContext(ctx, pattern, wordID); err != nil {
		return store.ExecError(err)
	}
	return nil
}
