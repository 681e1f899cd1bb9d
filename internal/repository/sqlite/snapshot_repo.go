package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	_ "modernc.org/sqlite"
)

// snapshotKey is the fixed row key; the ledger is a single-user aggregate.
const snapshotKey = "pfs_data"

// SnapshotRepository implements domain.SnapshotStore using a local SQLite
// file. It is the default store so the app runs with zero external
// services.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository opens (or creates) the SQLite database at path
// and ensures the backing table exists
func NewSnapshotRepository(path string) (*SnapshotRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// The store serializes writes itself; a single connection keeps
	// SQLITE_BUSY out of the picture.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return &SnapshotRepository{db: db}, nil
}

// Load retrieves the persisted snapshot
func (r *SnapshotRepository) Load() (*domain.AppData, error) {
	var raw []byte
	err := r.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, snapshotKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}

	var data domain.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &data, nil
}

// Save upserts the snapshot
func (r *SnapshotRepository) Save(data *domain.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT (key) DO UPDATE SET data = excluded.data, updated_at = datetime('now')`,
		snapshotKey, raw)
	return err
}

// Clear removes the snapshot
func (r *SnapshotRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM snapshots WHERE key = ?`, snapshotKey)
	return err
}

// Close closes the underlying database
func (r *SnapshotRepository) Close() error {
	return r.db.Close()
}
