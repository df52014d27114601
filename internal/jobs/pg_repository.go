package jobs

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type Repository interface {
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	// UpdateStatus applies the callback in a single atomic statement: status,
	// optional fields and the history append land together or not at all.
	UpdateStatus(ctx context.Context, jobID uuid.UUID, input *models.JobUpdateInput, entry models.HistoryEntry) (*models.Job, error)
	GetJobsByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Job, error)
}
