package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
	"github.com/dmitrijs2005/ecoscan/internal/client/repositories/records"
	"github.com/dmitrijs2005/ecoscan/internal/common"
	"github.com/google/uuid"
)

// HistoryService is the append-only log of completed classifications.
// Entries are never updated, reordered or deleted; listing preserves
// insertion order.
type HistoryService interface {
	Append(ctx context.Context, record *models.ClassificationRecord) error
	ListFor(ctx context.Context, ownerID string) ([]*models.ClassificationRecord, error)
	ListAll(ctx context.Context) ([]*models.ClassificationRecord, error)
}

type historyService struct {
	repo records.Repository
}

// NewHistoryService constructs a HistoryService over the local record store.
func NewHistoryService(repo records.Repository) HistoryService {
	return &historyService{repo: repo}
}

// Append adds the record to the end of the log, assigning an id and a
// timestamp when missing.
func (h *historyService) Append(ctx context.Context, record *models.ClassificationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if err := h.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}

// ListFor returns the records owned by ownerID in insertion order.
func (h *historyService) ListFor(ctx context.Context, ownerID string) ([]*models.ClassificationRecord, error) {
	result, err := h.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return result, nil
}

// ListAll returns every record regardless of owner. Intended for the
// privileged (admin) query only; callers gate access.
func (h *historyService) ListAll(ctx context.Context) ([]*models.ClassificationRecord, error) {
	result, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return result, nil
}
