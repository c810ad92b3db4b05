package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/seismiclabs/marketplace/internal/common/apperrors"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLite is a KV backed by a single-file SQLite database. Values are
// snappy-compressed on disk. This is the default backend: a local,
// single-process store with no server and no external dependencies.
type SQLite struct {
	db *sql.DB
}

var _ KV = (*SQLite)(nil)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// NewSQLite opens (creating if needed) the database file at path and
// ensures the kv table exists. Parent directories are created on demand.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating storage directory for %s", path)
	}

	// WAL keeps readers unblocked during writes; the busy timeout covers
	// a second process briefly holding the file.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite store %s", path)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "pinging sqlite store %s", path)
	}

	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "creating kv table in %s", path)
	}

	return &SQLite{db: db}, nil
}

// Get returns the decompressed value stored under key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, apperrors.Error) {
	var compressed []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&compressed)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, ErrKVStore.Err(err)
	}

	value, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, ErrCorruptValue.Err(err)
	}
	return value, nil
}

// Set stores the snappy-compressed value under key.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) apperrors.Error {
	compressed := snappy.Encode(nil, value)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, compressed)
	if err != nil {
		return ErrKVStore.Err(err)
	}
	return nil
}

// Delete removes key. Absent keys are ignored.
func (s *SQLite) Delete(ctx context.Context, key string) apperrors.Error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return ErrKVStore.Err(err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
