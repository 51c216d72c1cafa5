package records

import (
	"context"

	"github.com/dmitrijs2005/ecoscan/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, record *models.Record) (*models.Record, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Record, error)
	ListAll(ctx context.Context) ([]*models.Record, error)
}
