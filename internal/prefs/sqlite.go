package prefs

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DBFileName is the name of the preference database inside the data directory
const DBFileName = "prefs.sq3"

// SQLiteStore tracks preferences in a local SQLite file. Rows are keyed by
// scope so several clients (one per server URL) can share one file.
type SQLiteStore struct {
	db    *sql.DB
	scope string
	log   *zap.Logger
}

const query_prefs_initSchema = `
CREATE TABLE IF NOT EXISTS preferences (
	scope TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (scope, key)
);
`

// OpenSQLiteStore opens (and creates if needed) the preference database in dataDir
func OpenSQLiteStore(ctx context.Context, log *zap.Logger, dataDir, scope string) (*SQLiteStore, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open preference database")
	}

	s := &SQLiteStore{db: db, scope: scope, log: log}
	if err := s.retry(ctx, "init schema", func() error {
		_, err := db.ExecContext(ctx, query_prefs_initSchema)
		return err
	}); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	log.Debug("[PREFS]: Preference database opened", zap.String("path", dbPath), zap.String("scope", scope))
	return s, nil
}

const query_prefs_Get = `
SELECT value FROM preferences
WHERE scope = ? AND key = ?
`

// Get returns the stored value of key
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.retry(ctx, "get "+key, func() error {
		return s.db.QueryRowContext(ctx, query_prefs_Get, s.scope, key).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get preference %q", key)
	}
	return value, true, nil
}

const query_prefs_Set = `
INSERT INTO preferences (scope, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(scope, key) DO UPDATE SET
	value = excluded.value,
	updated_at = excluded.updated_at
`

// Set stores value under key
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	err := s.retry(ctx, "set "+key, func() error {
		_, err := s.db.ExecContext(ctx, query_prefs_Set, s.scope, key, value)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "failed to set preference %q", key)
	}
	s.log.Debug("[PREFS]: Updated preference", zap.String("scope", s.scope), zap.String("key", key), zap.String("value", value))
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return errors.WithStack(s.db.Close())
}
