package progress

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/pipeline"
)

type UseCase interface {
	// Apply persists an interpreted stage update for one target and fans out
	// the resulting events. Returns false when the target is already terminal
	// and the update was skipped.
	Apply(ctx context.Context, projectID uuid.UUID, languageCode string, interp *pipeline.Interpretation, message string) (bool, error)
	GetSummary(ctx context.Context, projectID uuid.UUID) (*models.ProgressSummary, error)
}
