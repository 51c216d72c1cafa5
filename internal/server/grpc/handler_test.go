package grpc

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecoscan/internal/dbx"
	pb "github.com/dmitrijs2005/ecoscan/internal/proto"
	"github.com/dmitrijs2005/ecoscan/internal/server/config"
	"github.com/dmitrijs2005/ecoscan/internal/server/models"
	"github.com/dmitrijs2005/ecoscan/internal/server/repositories/records"
	"github.com/dmitrijs2005/ecoscan/internal/server/repositories/users"
	"github.com/dmitrijs2005/ecoscan/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type memRecordsRepo struct {
	records []*models.Record
}

func (r *memRecordsRepo) Create(ctx context.Context, record *models.Record) (*models.Record, error) {
	stored := *record
	stored.ID = "rec-1"
	stored.CreatedAt = time.Now()
	r.records = append(r.records, &stored)
	return &stored, nil
}

func (r *memRecordsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Record, error) {
	var out []*models.Record
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRecordsRepo) ListAll(ctx context.Context) ([]*models.Record, error) {
	return r.records, nil
}

type memRepoMgr struct {
	recordsRepo *memRecordsRepo
}

func (m *memRepoMgr) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *memRepoMgr) Users(db dbx.DBTX) users.Repository                  { return nil }
func (m *memRepoMgr) Records(db dbx.DBTX) records.Repository              { return m.recordsRepo }

func newHandlerTestServer(repo *memRecordsRepo) *GRPCServer {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	mgr := &memRepoMgr{recordsRepo: repo}
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(cfg.SecretKey),
		users:     (*services.UserService)(nil),
		classify:  services.NewClassifyService(nil, mgr, cfg),
	}
}

func authedCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), UserIDKey, userID)
	return context.WithValue(ctx, RoleKey, role)
}

func TestPing_ReturnsOK(t *testing.T) {
	s := newHandlerTestServer(&memRecordsRepo{})

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestRegisterUser_MissingFields(t *testing.T) {
	s := newHandlerTestServer(&memRecordsRepo{})

	_, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Email: "a@b.c"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestClassify_MissingUser(t *testing.T) {
	s := newHandlerTestServer(&memRecordsRepo{})

	_, err := s.Classify(context.Background(), &pb.ClassifyRequest{StorageKey: "ref-1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestClassify_MissingStorageKey(t *testing.T) {
	s := newHandlerTestServer(&memRecordsRepo{})

	_, err := s.Classify(authedCtx("user-1", models.RoleUser), &pb.ClassifyRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestClassify_StoresRecordForCaller(t *testing.T) {
	repo := &memRecordsRepo{}
	s := newHandlerTestServer(repo)

	resp, err := s.Classify(authedCtx("user-1", models.RoleUser), &pb.ClassifyRequest{StorageKey: "ref-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ObjectName == "" || resp.Category == "" {
		t.Fatalf("incomplete classification: %+v", resp)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(repo.records))
	}
	if repo.records[0].OwnerID != "user-1" {
		t.Fatalf("record owner mismatch: %q", repo.records[0].OwnerID)
	}
}

func TestListRecords_AllRequiresAdmin(t *testing.T) {
	s := newHandlerTestServer(&memRecordsRepo{})

	_, err := s.ListRecords(authedCtx("user-1", models.RoleUser), &pb.ListRecordsRequest{All: true})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", status.Code(err))
	}
}

func TestListRecords_OwnAndAll(t *testing.T) {
	repo := &memRecordsRepo{records: []*models.Record{
		{ID: "r1", OwnerID: "user-1", ObjectName: "Smartphone", CreatedAt: time.Now()},
		{ID: "r2", OwnerID: "user-2", ObjectName: "CRT Monitor", CreatedAt: time.Now()},
	}}
	s := newHandlerTestServer(repo)

	own, err := s.ListRecords(authedCtx("user-1", models.RoleUser), &pb.ListRecordsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own.Records) != 1 || own.Records[0].Id != "r1" {
		t.Fatalf("unexpected own records: %+v", own.Records)
	}

	all, err := s.ListRecords(authedCtx("admin-1", models.RoleAdmin), &pb.ListRecordsRequest{All: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all.Records))
	}
}

func TestToPbRecord_MapsFields(t *testing.T) {
	now := time.Now()
	r := &models.Record{
		ID:                "r1",
		OwnerID:           "u1",
		ImageRef:          "uploads/x",
		ObjectName:        "Laptop Battery",
		Category:          "Battery",
		HazardousElements: []string{"Lead", "Cadmium", "Mercury"},
		Confidence:        94.2,
		CreatedAt:         now,
	}

	got := toPbRecord(r)
	if got.Id != r.ID || got.OwnerId != r.OwnerID || got.ImageRef != r.ImageRef {
		t.Fatalf("identity fields mismatch: %+v", got)
	}
	if got.ObjectName != r.ObjectName || got.Category != r.Category || got.Confidence != r.Confidence {
		t.Fatalf("classification fields mismatch: %+v", got)
	}
	if len(got.HazardousElements) != 3 {
		t.Fatalf("hazardous elements mismatch: %v", got.HazardousElements)
	}
	if got.CreatedAt != now.Unix() {
		t.Fatalf("created_at mismatch: %d", got.CreatedAt)
	}
}
