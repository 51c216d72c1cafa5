package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/ecoscan/internal/client/migrations"
	"github.com/dmitrijs2005/ecoscan/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ecoscan/internal/client/repositories/records"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local SQLite-backed stores used by the client:
// the session metadata KV store and the classification record log.
type Repositories struct {
	DB       *sql.DB
	Metadata metadata.Repository
	Records  records.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
		Records:  records.NewSQLiteRepository(db),
	}, nil
}
