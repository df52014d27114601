package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type UseCase interface {
	CreateProject(ctx context.Context, input *models.ProjectCreateInput) (*models.ProjectWithTargets, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.ProjectWithTargets, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
	GetUploadURL(ctx context.Context, projectID uuid.UUID, input *models.UploadInput) (string, error)
	GetAssets(ctx context.Context, projectID uuid.UUID) ([]*models.Asset, error)
}
