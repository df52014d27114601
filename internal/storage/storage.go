// Package storage defines the blob store access layer used by the pipeline
// for presigned uploads and for fetching worker-produced metadata documents.
package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dubwise/dubwise-backend/internal/models"
)

// BlobRepository abstracts the S3-compatible media bucket.
type BlobRepository interface {
	GetPresignedURL(ctx context.Context, input *models.UploadInput) (string, error)
	PutObject(ctx context.Context, input models.UploadInput) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, bucket, fileKey string) (*s3.GetObjectOutput, error)
	FetchDocument(ctx context.Context, bucket, fileKey string, dst interface{}) error
	Exists(ctx context.Context, bucket, fileKey string) (bool, error)
	RemoveObject(ctx context.Context, bucket, filename string) error
}
