package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const bucketName = "food-images"

// URLs stored in chat history stay valid for a week.
const urlExpiry = 7 * 24 * time.Hour

// ObjectStore keeps uploaded food photos and hands back a fetchable URL for
// the chat history.
type ObjectStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type minioStore struct {
	client *minio.Client
}

// NewMinioStore connects to the MinIO endpoint from MINIO_HOST and ensures
// the food-images bucket exists.
func NewMinioStore() (ObjectStore, error) {
	endpoint := os.Getenv("MINIO_HOST")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minioadmin"
	}
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "minioadmin"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &minioStore{client: client}, nil
}

// Put stores the object and returns a presigned GET URL for it.
func (s *minioStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, bucketName, objectName, urlExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL: %w", err)
	}
	return presignedURL.String(), nil
}
