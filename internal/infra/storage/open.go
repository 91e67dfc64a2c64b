package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open opens (or creates) the SQLite file at path and returns a Store over
// it. WAL and a busy timeout keep the single local file safe against the
// occasional overlapping reader.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	store, err := New(db, DialectSQLite)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// OpenPostgres opens a Store over a shared Postgres database, for
// deployments where the collection should outlive the host.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store, err := New(db, DialectPostgres)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// OpenMemory returns a Store over an in-memory SQLite database, closed when
// the test finishes.
func OpenMemory(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?cache=shared&_pragma=busy_timeout(10000)")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	db.SetMaxOpenConns(1)

	store, err := New(db, DialectSQLite)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
