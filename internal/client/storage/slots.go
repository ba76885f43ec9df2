package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reeflog/reeflog/internal/dbx"
)

// Slots is a tiny key-value repository over the slots table. Each slot holds
// one serialized record (the draft, the session token) under a fixed name.
type Slots struct {
	db dbx.DBTX
}

// NewSlots returns a Slots repository bound to the given DBTX.
func NewSlots(db dbx.DBTX) *Slots {
	return &Slots{db: db}
}

// Get returns the value stored under name, or (nil, nil) when the slot does
// not exist.
func (r *Slots) Get(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot[%s]: %w", name, err)
	}
	return value, nil
}

// Set upserts the value stored under name.
func (r *Slots) Set(ctx context.Context, name string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, value)
	if err != nil {
		return fmt.Errorf("failed to set slot[%s]: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (r *Slots) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete slot[%s]: %w", name, err)
	}
	return nil
}
