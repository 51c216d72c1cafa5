package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ecoscan/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const createQ = `(?s)^INSERT\s+INTO\s+records\s*\(owner_id,\s*image_ref,\s*object_name,\s*category,\s*hazardous_elements,\s*confidence\)`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r-1", created)
	mock.ExpectQuery(createQ).
		WithArgs("u-1", "uploads/key", "Laptop Battery", "Battery", []byte(`["Lead","Cadmium"]`), 94.2).
		WillReturnRows(rows)

	rec := &models.Record{
		OwnerID:           "u-1",
		ImageRef:          "uploads/key",
		ObjectName:        "Laptop Battery",
		Category:          "Battery",
		HazardousElements: []string{"Lead", "Cadmium"},
		Confidence:        94.2,
	}
	got, err := repo.Create(context.Background(), rec)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "r-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(createQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Record{OwnerID: "u-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const listByOwnerQ = `(?s)^SELECT\s+.*FROM\s+records\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at$`

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "owner_id", "image_ref", "object_name", "category", "hazardous_elements", "confidence", "created_at"}).
		AddRow("r-1", "u-1", "uploads/a", "CRT Monitor", "Display", []byte(`["Lead"]`), 88.0, created).
		AddRow("r-2", "u-1", "uploads/b", "Cable", "Cable", []byte(`[]`), 99.1, created.Add(time.Minute))
	mock.ExpectQuery(listByOwnerQ).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected count: %d", len(got))
	}
	if got[0].ObjectName != "CRT Monitor" || len(got[0].HazardousElements) != 1 {
		t.Fatalf("unexpected record: %+v", got[0])
	}
	if len(got[1].HazardousElements) != 0 {
		t.Fatalf("expected no hazardous elements: %+v", got[1])
	}
}

func TestListAll_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "image_ref", "object_name", "category", "hazardous_elements", "confidence", "created_at"})
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+records\s+ORDER\s+BY\s+created_at$`).
		WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
