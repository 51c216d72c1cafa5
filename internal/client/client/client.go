package client

import (
	"context"

	"github.com/dmitrijs2005/ecoscan/internal/client/models"
)

// Client is the API contract with the EcoScan backend. Register and Login
// return the issued access token together with the role-bearing identity;
// the remaining calls require that token to have been obtained first.
type Client interface {
	Close() error
	Register(ctx context.Context, name string, email string, password []byte) (string, *models.Identity, error)
	Login(ctx context.Context, email string, password []byte) (string, *models.Identity, error)
	Ping(ctx context.Context) error
	GetUploadURL(ctx context.Context, mediaType string) (key string, url string, err error)
	Classify(ctx context.Context, storageKey string) (*models.ClassificationResult, error)
	ListRecords(ctx context.Context, all bool) ([]*models.ClassificationRecord, error)
}
