// Package postgres provides a Postgres-backed ProcessedSet for
// deployments that already run a database; the flat-file backend remains
// the default.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS processed_ids (
	kind TEXT NOT NULL,
	id   TEXT NOT NULL,
	PRIMARY KEY (kind, id)
)`
	loadSQL   = `SELECT id FROM processed_ids WHERE kind = $1`
	insertSQL = `INSERT INTO processed_ids (kind, id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
)

// Config controls the connection pool behind the set.
type Config struct {
	DSN      string
	MaxConns int32
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// Set is a ProcessedSet whose durable copy lives in the processed_ids
// table, partitioned by kind ("teams" or "players"). Membership checks
// answer from memory like the file backend.
type Set struct {
	db   querier
	kind string
	seen map[string]struct{}
}

// Open connects, ensures the schema, and loads the ids for kind.
func Open(ctx context.Context, cfg Config, kind string) (*Set, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("state.dsn is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	set, err := open(ctx, pool, kind)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return set, nil
}

func open(ctx context.Context, db querier, kind string) (*Set, error) {
	if kind == "" {
		return nil, fmt.Errorf("kind is required")
	}
	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("ensure processed_ids table: %w", err)
	}
	rows, err := db.Query(ctx, loadSQL, kind)
	if err != nil {
		return nil, fmt.Errorf("load processed %s: %w", kind, err)
	}
	defer rows.Close()
	seen := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan processed %s: %w", kind, err)
		}
		seen[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processed %s: %w", kind, err)
	}
	return &Set{db: db, kind: kind, seen: seen}, nil
}

// Contains answers from memory only.
func (s *Set) Contains(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Add inserts the id durably before updating the in-memory set.
func (s *Set) Add(ctx context.Context, id string) error {
	if _, ok := s.seen[id]; ok {
		return nil
	}
	if _, err := s.db.Exec(ctx, insertSQL, s.kind, id); err != nil {
		return fmt.Errorf("mark %s %s processed: %w", s.kind, id, err)
	}
	s.seen[id] = struct{}{}
	return nil
}

// Close releases the pool.
func (s *Set) Close() {
	s.db.Close()
}
