// Package draft persists the in-progress dive log between wizard steps and
// across restarts. The record lives in a single fixed slot of the local
// database; each step saves only the fields it owns and the merged record is
// what the final submission reads.
package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/reeflog/reeflog/internal/client/models"
	"github.com/reeflog/reeflog/internal/client/storage"
	"github.com/reeflog/reeflog/internal/dbx"
)

const slotName = "draft"

// Store accumulates partial dive-log writes into one persisted record.
//
// Contract:
//   - Load: the persisted record, or an empty one when nothing is stored or
//     the stored payload is corrupt. Corruption is swallowed, not surfaced.
//   - Save: shallow field-wise merge of the patch into the stored record;
//     returns the merged record.
//   - Clear: removes the record; idempotent.
type Store interface {
	Load(ctx context.Context) (models.DraftRecord, error)
	Save(ctx context.Context, patch models.DraftPatch) (models.DraftRecord, error)
	Clear(ctx context.Context) error
}

// SlotStore is the Store implementation over the slots table.
type SlotStore struct {
	db *sql.DB
}

// NewSlotStore returns a SlotStore over the given database handle.
func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

func (s *SlotStore) Load(ctx context.Context) (models.DraftRecord, error) {
	return loadRecord(ctx, storage.NewSlots(s.db))
}

// Save merges the patch into the stored record inside one transaction, so a
// step's read-merge-write cannot interleave with another write.
func (s *SlotStore) Save(ctx context.Context, patch models.DraftPatch) (models.DraftRecord, error) {
	var merged models.DraftRecord

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		slots := storage.NewSlots(tx)

		rec, err := loadRecord(ctx, slots)
		if err != nil {
			return err
		}
		merged = rec.Apply(patch)

		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}
		return slots.Set(ctx, slotName, data)
	})
	if err != nil {
		return models.DraftRecord{}, fmt.Errorf("save draft: %w", err)
	}
	return merged, nil
}

func (s *SlotStore) Clear(ctx context.Context) error {
	if err := storage.NewSlots(s.db).Delete(ctx, slotName); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

func loadRecord(ctx context.Context, slots *storage.Slots) (models.DraftRecord, error) {
	var rec models.DraftRecord

	data, err := slots.Get(ctx, slotName)
	if err != nil {
		return rec, fmt.Errorf("load draft: %w", err)
	}
	if data == nil {
		return rec, nil
	}
	// A corrupt payload is treated as no draft at all; the user loses the
	// draft but the wizard keeps working.
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.DraftRecord{}, nil
	}
	return rec, nil
}
