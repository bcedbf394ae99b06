// Package iopgstore implements store.Store over PostgreSQL via
// jackc/pgx/v5, for deployments that centralize many languages' known
// words behind one multi-writer database rather than one SQLite file
// per language (spec §4.1's "any equivalent ordered store suffices").
//
// The two-table schema is created with plain CREATE TABLE IF NOT
// EXISTS DDL, not an ORM: the schema is fixed and never evolves
// row-by-row, so there is nothing for a migration tool to diff.
package iopgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/varnam/knownwords/pkg/config"
	"github.com/varnam/knownwords/pkg/store"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS words (
	id BIGSERIAL PRIMARY KEY,
	text TEXT NOT NULL UNIQUE,
	confidence INTEGER NOT NULL DEFAULT 1,
	learned_on BIGINT NOT NULL
);
CREATE TABLE IF NOT EXISTS patterns (
	pattern TEXT NOT NULL,
	word_id BIGINT NOT NULL REFERENCES words(id),
	learned BOOLEAN NOT NULL DEFAULT false,
	PRIMARY KEY (pattern, word_id)
);
CREATE INDEX IF NOT EXISTS patterns_word_id_idx ON patterns(word_id);
`

// lastLearned is the last-learned-word shortcut from spec §3.
type lastLearned struct {
	text string
	id   int64
	set  bool
}

// pgStore implements store.Store. Not safe for concurrent use.
type pgStore struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
	last lastLearned
	mode config.LearnMode
}

// Open connects to PostgreSQL per cfg and bootstraps the schema
// (idempotent).
func Open(ctx context.Context, cfg config.PostgresConfig, mode config.LearnMode) (store.Store, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, store.OpenError(dsn, err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1 // both int32 fields on pgxpool.Config

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, store.OpenError(dsn, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, store.OpenError(dsn, err)
	}

	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		pool.Close()
		return nil, store.SchemaError(err)
	}

	if mode == "" {
		mode = config.ModeMixed
	}
	return &pgStore{pool: pool, mode: mode}, nil
}

// exec runs sql against the open transaction, or the pool if none is
// open, and returns the affected row count.
func (s *pgStore) exec(ctx context.Context, sql string, args ...any) (int64, error) {
	var tag pgconn.CommandTag
	var err error
	if s.tx != nil {
		tag, err = s.tx.Exec(ctx, sql, args...)
	} else {
		tag, err = s.pool.Exec(ctx, sql, args...)
	}
	if err != nil {
		return 0, store.ExecError(err)
	}
	return tag.RowsAffected(), nil
}

func (s *pgStore) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if s.tx != nil {
		return s.tx.QueryRow(ctx, sql, args...)
	}
	return s.pool.QueryRow(ctx, sql, args...)
}

func (s *pgStore) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if s.tx != nil {
		return s.tx.Query(ctx, sql, args...)
	}
	return s.pool.Query(ctx, sql, args...)
}

func (s *pgStore) Begin(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return store.TxBeginError(err)
	}
	s.tx = tx
	return nil
}

func (s *pgStore) Commit(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit(ctx)
	s.tx = nil
	if err != nil {
		return store.TxCommitError(err)
	}
	return nil
}

func (s *pgStore) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback(ctx)
	s.tx = nil
	s.last = lastLearned{}
	if err != nil {
		return store.TxRollbackError(err)
	}
	return nil
}

// BeginBulk relaxes commit durability for a large run of learns, the
// Postgres analogue of the SQLite backend's PRAGMA synchronous=OFF.
func (s *pgStore) BeginBulk(ctx context.Context) error {
	if _, err := s.exec(ctx, "SET synchronous_commit = off"); err != nil {
		return err
	}
	return nil
}

// EndBulk mirrors the SQLite backend's asymmetry (spec §9 note c):
// bulk mode is write-only, its relaxed setting is never restored here
// either.
func (s *pgStore) EndBulk(ctx context.Context) error {
	return nil
}

// Compact mirrors the source's vwt_compact_file: a deliberate no-op.
func (s *pgStore) Compact(ctx context.Context) error {
	return nil
}

func (s *pgStore) Close() error {
	s.pool.Close()
	return nil
}
