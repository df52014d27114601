package segments

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type Repository interface {
	CountByProject(ctx context.Context, projectID uuid.UUID) (int, error)
	InsertSegments(ctx context.Context, projectID uuid.UUID, records []models.SegmentRecord) error
	// IndexIDMap maps segment_index to segment_id for every segment of a project.
	IndexIDMap(ctx context.Context, projectID uuid.UUID) (map[int]string, error)
	UpsertTranslation(ctx context.Context, translation *models.SegmentTranslation) error
	SetTranslationAudio(ctx context.Context, segmentID, languageCode, audioKey string) error
	GetSegmentsWithTranslations(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.SegmentWithTranslations, error)
	UpdateSegment(ctx context.Context, segmentID string, edit *models.SegmentEdit) (bool, error)
	UpdateTranslation(ctx context.Context, segmentID, languageCode string, edit *models.SegmentEdit) (bool, error)
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
