package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore keeps the snapshot document in a single Postgres row, replacing
// the whole document on every save. Same contract as FileStore, different
// durability story.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore wires a pgxpool-backed snapshot store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (p *PGStore) EnsureSchema(ctx context.Context) error {
	const createSQL = `
		CREATE TABLE IF NOT EXISTS snapshots (
			id  smallint PRIMARY KEY,
			doc jsonb NOT NULL
		)
	`
	if _, err := p.pool.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

// Load reads the document row. An empty table is treated as first run: the
// empty default is persisted and returned.
func (p *PGStore) Load(ctx context.Context) (Snapshot, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM snapshots WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			snap := NewSnapshot()
			if err := p.Save(ctx, snap); err != nil {
				return Snapshot{}, fmt.Errorf("store: initialize document: %w", err)
			}
			return snap, nil
		}
		return Snapshot{}, fmt.Errorf("store: read document: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return snap, nil
}

// Save upserts the full document into the single row.
func (p *PGStore) Save(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}

	const upsertSQL = `
		INSERT INTO snapshots (id, doc)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`
	if _, err := p.pool.Exec(ctx, upsertSQL, raw); err != nil {
		return fmt.Errorf("store: write document: %w", err)
	}
	return nil
}
