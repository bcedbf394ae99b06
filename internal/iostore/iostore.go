// Package iostore implements store.Store over an embedded SQLite
// database via modernc.org/sqlite (pure Go, no cgo). This is an impure
// I/O package; pkg/store defines the contract it satisfies.
package iostore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL UNIQUE,
	confidence INTEGER NOT NULL DEFAULT 1,
	learned_on INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS patterns (
	pattern TEXT NOT NULL,
	word_id INTEGER NOT NULL REFERENCES words(id),
	learned INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (pattern, word_id)
);
CREATE INDEX IF NOT EXISTS patterns_word_id_idx ON patterns(word_id);
`

// lastLearned is the last-learned-word shortcut from spec §3: updated
// only after a successful insert, consulted before hitting the store.
type lastLearned struct {
	text string
	id   int64
	set  bool
}

// sqliteStore implements store.Store. Not safe for concurrent use.
type sqliteStore struct {
	db    *sql.DB
	tx    *sql.Tx
	stmts [store.StmtCount]*sql.Stmt
	last  lastLearned
	mode  config.LearnMode
}

// Open bootstraps the schema (idempotent) and returns a ready handle.
// mode selects learn_word's insert/update strategy (spec §4.2); the
// end state is identical regardless, mode only affects throughput.
func Open(ctx context.Context, path string, mode config.LearnMode) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, store.OpenError(path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, store.OpenError(path, err)
	}

	pragmas := []string{
		"PRAGMA page_size=4096",
		"PRAGMA journal_mode=WAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, store.SchemaError(err)
		}
	}

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		db.Close()
		return nil, store.SchemaError(err)
	}

	if mode == "" {
		mode = config.ModeMixed
	}
	return &sqliteStore{db: db, mode: mode}, nil
}

// stmt returns the prepared statement for id, preparing it lazily
// against the underlying *sql.DB and, if a transaction is open,
// rebinding it to that transaction.
func (s *sqliteStore) stmt(ctx context.Context, id store.StmtID) (*sql.Stmt, error) {
	text, ok := stmtText[id]
	if !ok {
		return nil, fmt.Errorf("iostore: unknown statement id %d", id)
	}

	if s.stmts[id] == nil {
		prepared, err := s.db.PrepareContext(ctx, text)
		if err != nil {
			return nil, store.PrepareError(id, err)
		}
		s.stmts[id] = prepared
	}

	if s.tx != nil {
		return s.tx.StmtContext(ctx, s.stmts[id]), nil
	}
	return s.stmts[id], nil
}

func (s *sqliteStore) Begin(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return store.TxBeginError(err)
	}
	s.tx = tx
	return nil
}

func (s *sqliteStore) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return store.TxCommitError(err)
	}
	return nil
}

func (s *sqliteStore) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	s.last = lastLearned{}
	if err != nil {
		return store.TxRollbackError(err)
	}
	return nil
}

// BeginBulk relaxes synchronous-write guarantees for a large run of
// learns. A performance hint only; correctness never depends on it.
func (s *sqliteStore) BeginBulk(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "PRAGMA synchronous=OFF")
	if err != nil {
		return store.ExecError(err)
	}
	return nil
}

// EndBulk mirrors the source's vwt_turn_off_optimization_for_huge_transaction:
// it returns success without restoring the pragmas BeginBulk relaxed.
// This asymmetry is preserved deliberately (spec §9 note c), not fixed.
func (s *sqliteStore) EndBulk(ctx context.Context) error {
	return nil
}

// Compact mirrors the source's vwt_compact_file: a deliberate no-op.
func (s *sqliteStore) Compact(ctx context.Context) error {
	return nil
}

func (s *sqliteStore) Close() error {
	for _, prepared := range s.stmts {
		if prepared != nil {
			prepared.Close()
		}
	}
	return s.db.Close()
}
