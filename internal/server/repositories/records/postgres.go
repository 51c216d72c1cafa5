package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/dbx"
	"github.com/dmitrijs2005/ecoscan/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, record *models.Record) (*models.Record, error) {

	elements, err := json.Marshal(record.HazardousElements)
	if err != nil {
		return nil, fmt.Errorf("error encoding hazardous elements: %w", err)
	}

	query :=
		`INSERT INTO records (owner_id, image_ref, object_name, category, hazardous_elements, confidence)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		record.OwnerID, record.ImageRef, record.ObjectName, record.Category, elements, record.Confidence).
		Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

const selectColumns = `id, owner_id, image_ref, object_name, category, hazardous_elements, confidence, created_at`

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM records WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM records ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]*models.Record, error) {
	var result []*models.Record

	for rows.Next() {
		rec := &models.Record{}
		var elements []byte
		var created time.Time

		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.ImageRef, &rec.ObjectName,
			&rec.Category, &elements, &rec.Confidence, &created); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(elements, &rec.HazardousElements); err != nil {
			return nil, fmt.Errorf("error decoding hazardous elements: %w", err)
		}
		rec.CreatedAt = created

		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
