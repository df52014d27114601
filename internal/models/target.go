package models

import (
	"time"

	"github.com/google/uuid"
)

type TargetStatus string

const (
	TargetPending    TargetStatus = "pending"
	TargetProcessing TargetStatus = "processing"
	TargetCompleted  TargetStatus = "completed"
	TargetFailed     TargetStatus = "failed"
)

// Target tracks one (project, language) pair through the pipeline.
type Target struct {
	ProjectID    uuid.UUID    `json:"project_id" db:"project_id" validate:"required"`
	LanguageCode string       `json:"language_code" db:"language_code" validate:"required,lte=10"`
	Status       TargetStatus `json:"status" db:"status" validate:"omitempty"`
	Progress     int          `json:"progress" db:"progress" validate:"gte=0,lte=100"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type TargetProgress struct {
	Progress int          `json:"progress"`
	Status   TargetStatus `json:"status"`
}

// ProgressSummary is the per-project rollup served to the editor.
type ProgressSummary struct {
	OverallProgress  int                       `json:"overall_progress"`
	TargetProgresses map[string]TargetProgress `json:"target_progresses"`
	CompletedCount   int                       `json:"completed_count"`
	TotalCount       int                       `json:"total_count"`
}
