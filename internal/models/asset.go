package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AssetType string

const (
	AssetDubbedVideo AssetType = "dubbed_video"
	AssetDubbedAudio AssetType = "dubbed_audio"
	AssetSubtitle    AssetType = "subtitle"
)

// Asset is a completed deliverable for a (project, language); created once
// per (project, language, type) when the pipeline reports done.
type Asset struct {
	AssetID      uuid.UUID `json:"asset_id" db:"asset_id" validate:"omitempty"`
	ProjectID    uuid.UUID `json:"project_id" db:"project_id" validate:"required"`
	LanguageCode string    `json:"language_code" db:"language_code" validate:"required,lte=10"`
	AssetType    AssetType `json:"asset_type" db:"asset_type" validate:"required"`
	FilePath     string    `json:"file_path" db:"file_path" validate:"required"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" validate:"omitempty"`
}

// AssetTypeForKey derives the deliverable type from the result key extension.
func AssetTypeForKey(key string) AssetType {
	switch {
	case strings.HasSuffix(key, ".srt"), strings.HasSuffix(key, ".vtt"):
		return AssetSubtitle
	case strings.HasSuffix(key, ".mp3"), strings.HasSuffix(key, ".wav"), strings.HasSuffix(key, ".m4a"):
		return AssetDubbedAudio
	default:
		return AssetDubbedVideo
	}
}
