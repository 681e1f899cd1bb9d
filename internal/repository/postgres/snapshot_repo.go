package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhiraj/finpal/finpal-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// snapshotKey is the fixed row key; the ledger is a single-user aggregate.
const snapshotKey = "pfs_data"

// SnapshotRepository implements domain.SnapshotStore using PostgreSQL.
// The whole aggregate is stored as one JSONB row.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository and ensures the
// backing table exists
func NewSnapshotRepository(ctx context.Context, pool *pgxpool.Pool) (*SnapshotRepository, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &SnapshotRepository{pool: pool}, nil
}

// Load retrieves the persisted snapshot
func (r *SnapshotRepository) Load() (*domain.AppData, error) {
	ctx := context.Background()

	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM snapshots WHERE key = $1`, snapshotKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
	ctx := context.Background()

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		snapshotKey, raw)
	return err
}

// Clear removes the snapshot
func (r *SnapshotRepository) Clear() error {
	ctx := context.Background()

	_, err := r.pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, snapshotKey)
	return err
}
