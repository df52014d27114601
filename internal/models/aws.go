package models

import "io"

type UploadInput struct {
	File       io.Reader `json:"file,omitempty"`
	Name       string    `json:"name" validate:"required"`
	MimeType   string    `json:"mime_type" validate:"required"`
	Size       int64     `json:"size" validate:"required"`
	Key        string    `json:"key,omitempty"`
	BucketName string    `json:"bucket_name,omitempty"`
}
