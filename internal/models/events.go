package models

import "time"

type ProgressEventType string

const (
	EventProjectProgress ProgressEventType = "project-progress"
	EventTargetProgress  ProgressEventType = "target-progress"
	EventStageUpdate     ProgressEventType = "stage-update"
	EventTaskCompleted   ProgressEventType = "task-completed"
	EventTaskFailed      ProgressEventType = "task-failed"
	EventHeartbeat       ProgressEventType = "heartbeat"
	EventConnected       ProgressEventType = "connected"
)

// ProgressEvent is the payload pushed to live subscribers.
type ProgressEvent struct {
	EventType    ProgressEventType `json:"eventType"`
	ProjectID    string            `json:"projectId"`
	ProjectTitle string            `json:"projectTitle,omitempty"`
	TargetLang   string            `json:"targetLang,omitempty"`
	Status       TargetStatus      `json:"status"`
	Progress     int               `json:"progress"`
	Stage        string            `json:"stage,omitempty"`
	StageName    string            `json:"stageName,omitempty"`
	Message      string            `json:"message,omitempty"`
	Metadata     JSONMap           `json:"metadata,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}
