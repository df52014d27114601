package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusDone       JobStatus = "done"
	JobStatusFailed     JobStatus = "failed"
)

// HistoryEntry is one append-only audit record on a job.
type HistoryEntry struct {
	Status  JobStatus `json:"status"`
	TS      time.Time `json:"ts"`
	Message string    `json:"message,omitempty"`
}

type JobHistory []HistoryEntry

func (h JobHistory) Value() (driver.Value, error) {
	if h == nil {
		return json.Marshal(JobHistory{})
	}
	return json.Marshal(h)
}

func (h *JobHistory) Scan(src interface{}) error {
	if src == nil {
		*h = nil
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, h)
	case string:
		return json.Unmarshal([]byte(data), h)
	default:
		return fmt.Errorf("unsupported history source type %T", src)
	}
}

// Job is one unit of work dispatched to the external worker fleet.
type Job struct {
	JobID       uuid.UUID  `json:"job_id" db:"job_id" validate:"omitempty"`
	ProjectID   uuid.UUID  `json:"project_id" db:"project_id" validate:"required"`
	InputKey    *string    `json:"input_key,omitempty" db:"input_key" validate:"omitempty"`
	CallbackURL string     `json:"callback_url" db:"callback_url" validate:"required,url"`
	Status      JobStatus  `json:"status" db:"status" validate:"omitempty"`
	ResultKey   *string    `json:"result_key,omitempty" db:"result_key" validate:"omitempty"`
	Error       *string    `json:"error,omitempty" db:"error" validate:"omitempty"`
	Metadata    JSONMap    `json:"metadata,omitempty" db:"metadata" validate:"omitempty"`
	History     JobHistory `json:"history" db:"history" validate:"omitempty"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

// JobCreateInput dispatches a new job for a project.
type JobCreateInput struct {
	ProjectID string  `json:"project_id" validate:"required"`
	InputKey  *string `json:"input_key" validate:"omitempty"`
	Metadata  JSONMap `json:"metadata" validate:"omitempty"`
}

// JobUpdateInput is the worker callback payload.
type JobUpdateInput struct {
	Status    JobStatus `json:"status" validate:"required,oneof=in_progress done failed"`
	ResultKey *string   `json:"result_key" validate:"omitempty"`
	Error     *string   `json:"error" validate:"omitempty"`
	Message   *string   `json:"message" validate:"omitempty"`
	Metadata  JSONMap   `json:"metadata" validate:"omitempty"`
}

// DispatchMessage is what the worker fleet consumes from the queue.
type DispatchMessage struct {
	JobID       string `json:"job_id"`
	ProjectID   string `json:"project_id"`
	InputKey    string `json:"input_key,omitempty"`
	CallbackURL string `json:"callback_url"`
}

func (d *DispatchMessage) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}
