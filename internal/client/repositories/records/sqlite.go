package records

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, record *models.ClassificationRecord) error {
	elements, err := json.Marshal(record.Result.HazardousElements)
	if err != nil {
		return fmt.Errorf("failed to encode hazardous elements: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO records (id, owner_id, image_ref, object_name, category, hazardous_elements, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.OwnerID, record.ImageRef,
		record.Result.ObjectName, record.Result.Category, string(elements),
		record.Result.Confidence, record.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.ClassificationRecord, error) {
	return r.query(ctx, `
		SELECT id, owner_id, image_ref, object_name, category, hazardous_elements, confidence, created_at
		FROM records WHERE owner_id = ? ORDER BY rowid`, ownerID)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*models.ClassificationRecord, error) {
	return r.query(ctx, `
		SELECT id, owner_id, image_ref, object_name, category, hazardous_elements, confidence, created_at
		FROM records ORDER BY rowid`)
}

func (r *SQLiteRepository) query(ctx context.Context, q string, args ...any) ([]*models.ClassificationRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var result []*models.ClassificationRecord
	for rows.Next() {
		var (
			rec      models.ClassificationRecord
			elements string
			created  int64
		)
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.ImageRef,
			&rec.Result.ObjectName, &rec.Result.Category, &elements,
			&rec.Result.Confidence, &created); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		if err := json.Unmarshal([]byte(elements), &rec.Result.HazardousElements); err != nil {
			return nil, fmt.Errorf("failed to decode hazardous elements: %w", err)
		}
		rec.CreatedAt = time.Unix(created, 0)
		result = append(result, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}
	return result, nil
}
