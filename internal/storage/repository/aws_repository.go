package repository

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/storage"
)

type awsRepository struct {
	client        *s3.Client
	preSignClient *s3.PresignClient
}

func NewAwsRepository(awsClient *s3.Client, preSignClient *s3.PresignClient) storage.BlobRepository {
	return &awsRepository{
		preSignClient: preSignClient,
		client:        awsClient,
	}
}

func (a *awsRepository) GetPresignedURL(ctx context.Context, input *models.UploadInput) (string, error) {
	putObjectReq, err := a.preSignClient.PresignPutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &input.BucketName,
			Key:           &input.Key,
			ContentLength: &input.Size,
			ContentType:   &input.MimeType,
		},
		s3.WithPresignExpires(60*time.Minute),
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign put object : %w", err)
	}
	return putObjectReq.URL, nil
}

func (a *awsRepository) PutObject(ctx context.Context, input models.UploadInput) (*s3.PutObjectOutput, error) {
	res, err := a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &input.BucketName,
			Key:           &input.Key,
			ContentType:   &input.MimeType,
			ContentLength: &input.Size,
			Body:          input.File,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file : %w", err)
	}
	return res, nil
}

func (a *awsRepository) GetObject(ctx context.Context, bucket, fileKey string) (*s3.GetObjectOutput, error) {
	res, err := a.client.GetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &fileKey,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to download file : %w", err)
	}
	return res, nil
}

// FetchDocument downloads a JSON document and decodes it into dst. Workers
// gzip large transcript blobs, so both the key suffix and the object
// Content-Encoding select transparent decompression.
func (a *awsRepository) FetchDocument(ctx context.Context, bucket, fileKey string, dst interface{}) error {
	res, err := a.GetObject(ctx, bucket, fileKey)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var body io.Reader = res.Body
	if strings.HasSuffix(fileKey, ".gz") || aws.ToString(res.ContentEncoding) == "gzip" {
		gz, err := gzip.NewReader(res.Body)
		if err != nil {
			return fmt.Errorf("failed to open gzip stream : %w", err)
		}
		defer gz.Close()
		body = gz
	}

	if err = json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode document %s : %w", fileKey, err)
	}
	return nil
}

func (a *awsRepository) Exists(ctx context.Context, bucket, fileKey string) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &bucket,
		Key:    &fileKey,
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, fmt.Errorf("failed to head object : %w", err)
	}
	return true, nil
}

func (a *awsRepository) RemoveObject(ctx context.Context, bucket, filename string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &filename,
	})
	if err != nil {
		return fmt.Errorf("failed to remove file : %w", err)
	}
	return nil
}
