// Package records implements the append-only local store of completed
// classifications. Rows are never updated or deleted; listing preserves
// insertion order.
package records

import (
	"context"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, record *models.ClassificationRecord) error
	GetByOwner(ctx context.Context, ownerID string) ([]*models.ClassificationRecord, error)
	GetAll(ctx context.Context) ([]*models.ClassificationRecord, error)
}
