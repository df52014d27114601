package segments

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type UseCase interface {
	// Materialize turns a worker completion payload into segment rows and
	// per-language translations, and returns how many segments the project has.
	Materialize(ctx context.Context, projectID uuid.UUID, languageCode string, meta *models.CallbackMetadata) (int, error)
	// RetargetSegment stores the re-synthesized audio of a single segment.
	RetargetSegment(ctx context.Context, projectID uuid.UUID, languageCode string, meta *models.CallbackMetadata) error
	GetSegments(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.SegmentWithTranslations, error)
	BulkUpdateSegments(ctx context.Context, projectID uuid.UUID, languageCode string, input *models.SegmentsBulkUpdateInput) (*models.SegmentsBulkUpdateResult, error)
}
