// Package storage uploads media files to an S3-compatible object store and
// hands back the public URLs that get embedded in product payloads.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/example/vardhaman/internal/config"
)

// Service wraps the object-storage client for media uploads.
type Service struct {
	client *minio.Client
	bucket string
}

// New builds a storage service from the configured endpoint and credentials.
func New(cfg *config.Config) (*Service, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &Service{client: client, bucket: cfg.StorageBucket}, nil
}

// Upload streams one file into the bucket under a date-partitioned random
// object name and returns its URL.
func (s *Service) Upload(ctx context.Context, reader io.Reader, fileName string, fileSize int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("media/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.New().String()[:8],
		filepath.Ext(fileName))

	if _, err := s.client.PutObject(ctx, s.bucket, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectName), nil
}
