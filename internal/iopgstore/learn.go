package iopgstore

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
)

// LearnWord mirrors internal/iostore's LearnWord (spec §4.2) against
// Postgres, using RETURNING id in place of database/sql's
// LastInsertId, which pgx does not provide.
func (s *pgStore) LearnWord(ctx context.Context, text string, confidence int) (int64, bool, error) {
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

func (s *pgStore) learnWordMixed(ctx context.Context, text string, confidence int) (int64, bool, error) {
	affected, err := s.exec(ctx, sqlUpdateWordConfidence, text)
	if err != nil {
		return 0, false, err
	}
	if affected > 0 {
		id, err := s.wordIDOfUncached(ctx, text)
		return id, false, err
	}

	var id int64
	err = s.queryRow(ctx, sqlInsertWord+" RETURNING id", text, confidence, time.Now().Unix()).Scan(&id)
	if err != nil {
		return 0, false, store.ExecError(err)
	}
	return id, true, nil
}

func (s *pgStore) learnWordMostlyNew(ctx context.Context, text string, confidence int) (int64, bool, error) {
	var id int64
	err := s.queryRow(ctx, sqlInsertWordIgnore+" RETURNING id", text, confidence, time.Now().Unix()).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if err != pgx.ErrNoRows {
		return 0, false, store.ExecError(err)
	}

	if _, err := s.exec(ctx, sqlUpdateWordConfidence, text); err != nil {
		return 0, false, err
	}
	id, err = s.wordIDOfUncached(ctx, text)
	return id, false, err
}

func (s *pgStore) wordIDOfUncached(ctx context.Context, text string) (int64, error) {
	var id int64
	err := s.queryRow(ctx, sqlWordIDOf, text).Scan(&id)
	if err == pgx.ErrNoRows {
		return store.WordNotFoundSentinel, nil
	}
	if err != nil {
		return 0, store.QueryError(err)
	}
	return id, nil
}

// InsertPattern mirrors internal/iostore's InsertPattern.
func (s *pgStore) InsertPattern(ctx context.Context, pattern string, wordID int64, isPrefix bool) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	if _, err := s.exec(ctx, sqlInsertPattern, pattern, wordID); err != nil {
		return err
	}
	if isPrefix {
		return nil
	}
	if _, err := s.exec(ctx, sqlMarkPatternLearned, pattern, wordID); err != nil {
		return err
	}
	return nil
}
