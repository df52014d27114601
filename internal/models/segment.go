package models

import (
	"time"

	"github.com/google/uuid"
)

// Segment is one timed unit of source speech. (project_id, segment_index) is
// unique; segments are created once per project by the first completed
// language and shared by all later ones.
type Segment struct {
	SegmentID    uuid.UUID `json:"segment_id" db:"segment_id" validate:"omitempty"`
	ProjectID    uuid.UUID `json:"project_id" db:"project_id" validate:"required"`
	SegmentIndex int       `json:"segment_index" db:"segment_index" validate:"gte=0"`
	SpeakerTag   string    `json:"speaker_tag" db:"speaker_tag" validate:"omitempty,lte=64"`
	StartTime    float64   `json:"start" db:"start_time" validate:"gte=0"`
	EndTime      float64   `json:"end" db:"end_time" validate:"gte=0"`
	SourceText   string    `json:"source_text" db:"source_text" validate:"omitempty"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" validate:"omitempty"`
}

// SegmentTranslation is one language's rendering of a segment. The segment id
// is stored as a plain string so rows join by value regardless of id type.
type SegmentTranslation struct {
	TranslationID uuid.UUID `json:"translation_id" db:"translation_id" validate:"omitempty"`
	SegmentID     string    `json:"segment_id" db:"segment_id" validate:"required"`
	LanguageCode  string    `json:"language_code" db:"language_code" validate:"required,lte=10"`
	TargetText    string    `json:"target_text" db:"target_text" validate:"omitempty"`
	AudioKey      *string   `json:"segment_audio_url,omitempty" db:"audio_key" validate:"omitempty"`
	PlaybackRate  *float64  `json:"playback_rate,omitempty" db:"playback_rate" validate:"omitempty"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type SegmentWithTranslations struct {
	Segment
	Translations []*SegmentTranslation `json:"translations"`
}

// SegmentRecord is the normalized internal representation every worker
// payload shape is adapted into at the boundary. Times are in seconds.
type SegmentRecord struct {
	Index      int
	SpeakerTag string
	Start      float64
	End        float64
	SourceText string
	TargetText string
	AudioKey   string
}

// SegmentEdit is one entry of the bulk editor update. Only set fields are
// written.
type SegmentEdit struct {
	ID           string   `json:"id" validate:"required"`
	Start        *float64 `json:"start" validate:"omitempty,gte=0"`
	End          *float64 `json:"end" validate:"omitempty,gte=0"`
	SpeakerTag   *string  `json:"speaker_tag" validate:"omitempty,lte=64"`
	SourceText   *string  `json:"source_text" validate:"omitempty"`
	TargetText   *string  `json:"target_text" validate:"omitempty"`
	PlaybackRate *float64 `json:"playbackRate" validate:"omitempty,gt=0"`
}

type SegmentsBulkUpdateInput struct {
	Segments []SegmentEdit `json:"segments" validate:"required,min=1,dive"`
}

type SegmentsBulkUpdateResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}
