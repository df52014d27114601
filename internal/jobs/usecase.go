package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type UseCase interface {
	CreateJob(ctx context.Context, input *models.JobCreateInput) (*models.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	// UpdateStatus is the worker callback entry point: the ledger write is
	// mandatory, everything derived from the stage metadata is best-effort.
	UpdateStatus(ctx context.Context, jobID uuid.UUID, input *models.JobUpdateInput) (*models.Job, error)
	GetProjectJobs(ctx context.Context, projectID uuid.UUID) ([]*models.Job, error)
	MarkFailed(ctx context.Context, jobID uuid.UUID, errMsg, message string) (*models.Job, error)
}
