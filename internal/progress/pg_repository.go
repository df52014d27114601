package progress

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type Repository interface {
	GetTarget(ctx context.Context, projectID uuid.UUID, languageCode string) (*models.Target, error)
	// ApplyTargetUpdate writes progress and status for one target unless the
	// target already completed. Returns false when the row was skipped.
	ApplyTargetUpdate(ctx context.Context, projectID uuid.UUID, languageCode string, progress int, status models.TargetStatus) (bool, error)
	GetTargets(ctx context.Context, projectID uuid.UUID) ([]*models.Target, error)
	GetProjectTitle(ctx context.Context, projectID uuid.UUID) (string, error)
}
