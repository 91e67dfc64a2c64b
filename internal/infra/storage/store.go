// Package storage is the key-value persistence layer. Every collection is a
// JSON document stored wholesale under a fixed key, mirroring the flat
// namespace the data originally lived in.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Persisted keys. The tahqeeq_ prefixes are kept from the original data so
// existing exports and imports line up.
const (
	KeyLeads     = "tahqeeq_leads"
	KeyTemplates = "tahqeeq_templates"
	KeyUser      = "tahqeeq_user"
	KeyAuth      = "tahqeeq_auth"
	KeyTriggers  = "tahqeeq_triggers"
	KeyAPIKeys   = "tahqeeq_api_keys"
	KeyJobs      = "tahqeeq_jobs"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Dialect selects placeholder syntax for the underlying driver.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Store reads and writes raw JSON text under string keys. Writes overwrite
// wholesale; there is no transactionality across keys and no merge between
// concurrent processes (last writer wins).
type Store struct {
	db      *sql.DB
	get     string
	put     string
	deleteQ string
}

func New(db *sql.DB, dialect Dialect) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	s := &Store{db: db}
	switch dialect {
	case DialectPostgres:
		s.get = `SELECT value FROM kv WHERE key = $1`
		s.put = `INSERT INTO kv (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
		s.deleteQ = `DELETE FROM kv WHERE key = $1`
	default:
		s.get = `SELECT value FROM kv WHERE key = ?`
		s.put = `INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value`
		s.deleteQ = `DELETE FROM kv WHERE key = ?`
	}
	return s, nil
}

// Get returns the stored text and whether the key was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.get, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous content.
func (s *Store) Put(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.put, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.deleteQ, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
