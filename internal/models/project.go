package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the source video and its denormalized pipeline state. The job
// history stays authoritative; these columns are tolerated duplication for
// cheap editor reads.
type Project struct {
	ProjectID     uuid.UUID `json:"project_id" db:"project_id" validate:"omitempty"`
	OwnerID       string    `json:"owner_id" db:"owner_id" validate:"omitempty"`
	Title         string    `json:"title" db:"title" validate:"required,lte=255"`
	Status        string    `json:"status" db:"status" validate:"omitempty"`
	VideoKey      *string   `json:"video_key,omitempty" db:"video_key" validate:"omitempty"`
	AudioKey      *string   `json:"audio_key,omitempty" db:"audio_key" validate:"omitempty"`
	VocalsKey     *string   `json:"vocals_key,omitempty" db:"vocals_key" validate:"omitempty"`
	BackgroundKey *string   `json:"background_key,omitempty" db:"background_key" validate:"omitempty"`
	SpeakerVoices JSONMap   `json:"speaker_voices,omitempty" db:"speaker_voices" validate:"omitempty"`
	LastStage     *string   `json:"last_stage,omitempty" db:"last_stage" validate:"omitempty"`
	SegmentsCount int       `json:"segments_count" db:"segments_count" validate:"omitempty"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type ProjectCreateInput struct {
	Title           string   `json:"title" validate:"required,lte=255"`
	TargetLanguages []string `json:"target_languages" validate:"required,min=1,dive,lte=10"`
}

type ProjectWithTargets struct {
	Project *Project  `json:"project"`
	Targets []*Target `json:"targets"`
}

// SourceKeys are the separated audio tracks reported by asr_completed, needed
// later for re-mux and editor playback.
type SourceKeys struct {
	AudioKey      *string
	VocalsKey     *string
	BackgroundKey *string
}

func (s SourceKeys) Empty() bool {
	return s.AudioKey == nil && s.VocalsKey == nil && s.BackgroundKey == nil
}
