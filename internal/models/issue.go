package models

import (
	"time"

	"github.com/google/uuid"
)

type IssueType string

const (
	IssueSTTQuality    IssueType = "stt_quality"
	IssueTTSQuality    IssueType = "tts_quality"
	IssueSyncDuration  IssueType = "sync_duration"
	IssueSpeakerIdent  IssueType = "speaker_identification"
	IssueGlossary      IssueType = "glossary_violation"
)

type IssueSeverity string

const (
	SeverityLow    IssueSeverity = "low"
	SeverityMedium IssueSeverity = "medium"
	SeverityHigh   IssueSeverity = "high"
)

// Issue is a flagged quality or glossary problem on a segment translation.
type Issue struct {
	IssueID       uuid.UUID     `json:"issue_id" db:"issue_id" validate:"omitempty"`
	TranslationID string        `json:"segment_translation_id" db:"translation_id" validate:"required"`
	ProjectID     uuid.UUID     `json:"project_id" db:"project_id" validate:"required"`
	LanguageCode  string        `json:"language_code" db:"language_code" validate:"required,lte=10"`
	IssueType     IssueType     `json:"issue_type" db:"issue_type" validate:"required"`
	Severity      IssueSeverity `json:"severity" db:"severity" validate:"required"`
	Score         *float64      `json:"score,omitempty" db:"score" validate:"omitempty"`
	Diff          *float64      `json:"diff,omitempty" db:"diff" validate:"omitempty"`
	Details       JSONMap       `json:"details,omitempty" db:"details" validate:"omitempty"`
	Resolved      bool          `json:"resolved" db:"resolved" validate:"omitempty"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type IssueResolveInput struct {
	Resolved bool `json:"resolved"`
}

// CorrectionIssue is one finding from the external correction capability.
type CorrectionIssue struct {
	Message string `json:"message"`
	From    string `json:"from"`
	To      string `json:"to"`
	Kind    string `json:"kind"`
}

type CorrectionResult struct {
	CorrectedText string            `json:"corrected_text"`
	Issues        []CorrectionIssue `json:"issues"`
	Notes         string            `json:"notes,omitempty"`
}
