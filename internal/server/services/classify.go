package services

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
	"time"

	sc "github.com/dmitrijs2005/ecoscan/internal/server/config"
	"github.com/dmitrijs2005/ecoscan/internal/server/models"
	"github.com/dmitrijs2005/ecoscan/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// inference is one row of the placeholder classification table. Until a real
// model is attached, results are picked from this table deterministically by
// storage key, so the same upload always classifies the same way.
type inference struct {
	objectName        string
	category          string
	hazardousElements []string
	confidence        float64
}

var inferenceTable = []inference{
	{"Laptop Battery", "Battery", []string{"Lead", "Cadmium", "Mercury"}, 94.2},
	{"CRT Monitor", "Display", []string{"Lead", "Phosphor"}, 88.7},
	{"Smartphone", "Mobile Device", []string{"Lithium", "Cobalt"}, 91.3},
	{"Circuit Board", "PCB", []string{"Lead", "Brominated Flame Retardants"}, 86.5},
}

// ClassifyService owns the upload/classify flow on the server: it issues
// presigned S3 URLs for uploads, classifies uploaded images and keeps the
// per-user record log.
type ClassifyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewClassifyService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ClassifyService {
	return &ClassifyService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ClassifyService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutUrl generates a fresh storage key and a presigned PUT URL
// the client can upload the image bytes to directly.
func (s *ClassifyService) GetPresignedPutUrl(ctx context.Context, mediaType string) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	input := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if mediaType != "" {
		input.ContentType = &mediaType
	}

	req, err := presignPutObject(presignClient, ctx, input, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetPresignedGetUrl returns a presigned download URL for a stored image.
func (s *ClassifyService) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// inferFromKey picks the placeholder result for a storage key.
func inferFromKey(storageKey string) inference {
	h := fnv.New32a()
	_, _ = h.Write([]byte(storageKey))
	return inferenceTable[int(h.Sum32())%len(inferenceTable)]
}

// Classify runs the placeholder inference for the uploaded image and stores
// the result as a record owned by userID.
func (s *ClassifyService) Classify(ctx context.Context, userID string, storageKey string) (*models.Record, error) {

	inf := inferFromKey(storageKey)

	record := &models.Record{
		OwnerID:           userID,
		ImageRef:          storageKey,
		ObjectName:        inf.objectName,
		Category:          inf.category,
		HazardousElements: inf.hazardousElements,
		Confidence:        inf.confidence,
	}

	repo := s.repomanager.Records(s.db)
	record, err := repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("error storing record: %v", err)
	}

	return record, nil
}

// ListRecords returns the caller's records, or every user's records when
// all is true. The role check belongs to the transport layer.
func (s *ClassifyService) ListRecords(ctx context.Context, userID string, all bool) ([]*models.Record, error) {
	repo := s.repomanager.Records(s.db)
	if all {
		return repo.ListAll(ctx)
	}
	return repo.ListByOwner(ctx, userID)
}
