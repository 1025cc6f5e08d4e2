package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/glebarez/go-sqlite"
)

// PostgresRemote keeps the document as a jsonb row in the table named after
// the collection.
type PostgresRemote struct {
	pool  *pgxpool.Pool
	table string
	id    string

	mu       sync.Mutex
	migrated bool
}

// NewPostgresRemote creates a pool for dsn. Connections are made lazily.
func NewPostgresRemote(ctx context.Context, dsn string, addr Address) (*PostgresRemote, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: create postgres pool: %w", err)
	}
	return &PostgresRemote{
		pool:  pool,
		table: pgx.Identifier{addr.Collection}.Sanitize(),
		id:    addr.Record,
	}, nil
}

func (p *PostgresRemote) ensureTable(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.migrated {
		return nil
	}
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, p.table))
	if err != nil {
		return fmt.Errorf("store: create table %s: %w", p.table, err)
	}
	p.migrated = true
	return nil
}

func (p *PostgresRemote) Get(ctx context.Context) ([]byte, error) {
	if err := p.ensureTable(ctx); err != nil {
		return nil, err
	}
	var data string
	err := p.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT data::text FROM %s WHERE id = $1`, p.table), p.id,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: postgres get %s: %w", p.id, err)
	}
	return []byte(data), nil
}

func (p *PostgresRemote) Put(ctx context.Context, data []byte) error {
	if err := p.ensureTable(ctx); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (id, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`, p.table),
		p.id, string(data))
	if err != nil {
		return fmt.Errorf("store: postgres put %s: %w", p.id, err)
	}
	return nil
}

func (p *PostgresRemote) Close() error {
	p.pool.Close()
	return nil
}

// SQLiteRemote keeps the document as a text row in a sqlite database file,
// for a record shared through a synced folder or network mount.
type SQLiteRemote struct {
	db    *sql.DB
	table string
	id    string

	mu       sync.Mutex
	migrated bool
}

// NewSQLiteRemote opens the database at path.
func NewSQLiteRemote(path string, addr Address) (*SQLiteRemote, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %s: %w", path, err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return &SQLiteRemote{
		db:    db,
		table: `"` + addr.Collection + `"`,
		id:    addr.Record,
	}, nil
}

func (s *SQLiteRemote) ensureTable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.migrated {
		return nil
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`, s.table))
	if err != nil {
		return fmt.Errorf("store: create table %s: %w", s.table, err)
	}
	s.migrated = true
	return nil
}

func (s *SQLiteRemote) Get(ctx context.Context) ([]byte, error) {
	if err := s.ensureTable(ctx); err != nil {
		return nil, err
	}
	var data string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT data FROM %s WHERE id = ?`, s.table), s.id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: sqlite get %s: %w", s.id, err)
	}
	return []byte(data), nil
}

func (s *SQLiteRemote) Put(ctx context.Context, data []byte) error {
	if err := s.ensureTable(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`, s.table),
		s.id, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: sqlite put %s: %w", s.id, err)
	}
	return nil
}

func (s *SQLiteRemote) Close() error {
	return s.db.Close()
}
