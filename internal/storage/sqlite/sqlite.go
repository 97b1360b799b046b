// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	ierr "github.com/mmynk/acme-dashboard/internal/errors"
	"github.com/mmynk/acme-dashboard/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// Pragmas are applied by the driver on every pooled connection.
const pragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+pragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Migrate opens the database at dbPath, applies the schema and closes it.
func Migrate(dbPath string) error {
	s, err := New(dbPath)
	if err != nil {
		return err
	}
	return s.Close()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// dbError marks err as a persistence failure.
func dbError(err error, msg string) error {
	return ierr.WithError(err).WithMessage(msg).Mark(ierr.ErrDatabase)
}
