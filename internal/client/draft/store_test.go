package draft

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflog/reeflog/internal/client/models"

	_ "modernc.org/sqlite"
)

func str(s string) *string { return &s }

func setupStore(t *testing.T) (*SlotStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE slots (name TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	return NewSlotStore(db), db
}

func TestLoad_NoDraftReturnsEmptyRecord(t *testing.T) {
	s, _ := setupStore(t)

	rec, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty())
}

func TestSave_MergesPatchesShallowly(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, models.DraftPatch{
		Title:    str("Reef dive"),
		SiteName: str("Blue Hole"),
		Depth:    str("12"),
	})
	require.NoError(t, err)

	merged, err := s.Save(ctx, models.DraftPatch{
		Depth:      str("18"), // overwrites the earlier write
		BottomTime: str("40"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Reef dive", merged.Title)
	assert.Equal(t, "Blue Hole", merged.SiteName)
	assert.Equal(t, "18", merged.Depth)
	assert.Equal(t, "40", merged.BottomTime)

	// The merged record is what a fresh Load sees.
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, merged, loaded)
}

func TestSave_LaterPatchWinsOnConflict(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, models.DraftPatch{Title: str("first")})
	require.NoError(t, err)
	merged, err := s.Save(ctx, models.DraftPatch{Title: str("second")})
	require.NoError(t, err)

	assert.Equal(t, "second", merged.Title)
}

func TestSave_EquipmentListIsReplacedNotAppended(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	first := []string{"torch", "knife"}
	_, err := s.Save(ctx, models.DraftPatch{Equipment: &first})
	require.NoError(t, err)

	second := []string{"camera"}
	merged, err := s.Save(ctx, models.DraftPatch{Equipment: &second})
	require.NoError(t, err)

	assert.Equal(t, []string{"camera"}, merged.Equipment)
}

func TestClear_ThenLoadReturnsEmpty(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, models.DraftPatch{Title: str("Reef dive")})
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	rec, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty())

	// Clearing twice is fine.
	require.NoError(t, s.Clear(ctx))
}

func TestLoad_CorruptPayloadIsSwallowed(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO slots(name, value) VALUES ('draft', ?)`, []byte(`{not json`))
	require.NoError(t, err)

	rec, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty())
}
