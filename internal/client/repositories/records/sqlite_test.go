package records

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  id                 TEXT PRIMARY KEY,
  owner_id           TEXT NOT NULL,
  image_ref          TEXT NOT NULL,
  object_name        TEXT NOT NULL,
  category           TEXT NOT NULL,
  hazardous_elements TEXT NOT NULL,
  confidence         REAL NOT NULL,
  created_at         INTEGER NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func sampleRecord(id, owner string) *models.ClassificationRecord {
	return &models.ClassificationRecord{
		ID:       id,
		OwnerID:  owner,
		ImageRef: "users/2025/1/1/" + id,
		Result: models.ClassificationResult{
			ObjectName:        "Laptop Battery",
			Category:          "Battery",
			HazardousElements: []string{"Lead", "Cadmium", "Mercury"},
			Confidence:        94.2,
		},
		CreatedAt: time.Unix(1735689600, 0),
	}
}

func TestInsertAndGetByOwner_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	rec := sampleRecord("r1", "u1")
	require.NoError(t, r.Insert(ctx, rec))

	got, err := r.GetByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, rec.ImageRef, got[0].ImageRef)
	assert.Equal(t, rec.Result, got[0].Result)
	assert.True(t, rec.CreatedAt.Equal(got[0].CreatedAt))
}

func TestGetByOwner_FiltersAndPreservesInsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleRecord("r1", "u1")))
	require.NoError(t, r.Insert(ctx, sampleRecord("r2", "u2")))
	require.NoError(t, r.Insert(ctx, sampleRecord("r3", "u1")))

	got, err := r.GetByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r3", got[1].ID)
}

func TestGetAll_ReturnsEveryOwner(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleRecord("r1", "u1")))
	require.NoError(t, r.Insert(ctx, sampleRecord("r2", "u2")))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetByOwner_NoRows_ReturnsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInsert_DuplicateID_Fails(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleRecord("r1", "u1")))
	err := r.Insert(ctx, sampleRecord("r1", "u1"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to insert record")
}
