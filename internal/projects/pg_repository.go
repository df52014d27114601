package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type Repository interface {
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	GetProjectsByOwner(ctx context.Context, ownerID string) ([]*models.Project, error)
	CreateTargets(ctx context.Context, projectID uuid.UUID, languages []string) ([]*models.Target, error)
	GetTargets(ctx context.Context, projectID uuid.UUID) ([]*models.Target, error)
	FirstTargetLanguage(ctx context.Context, projectID uuid.UUID) (string, error)
	SetVideoKey(ctx context.Context, projectID uuid.UUID, videoKey string) error
	SetSourceKeys(ctx context.Context, projectID uuid.UUID, keys models.SourceKeys) error
	MergeSpeakerVoices(ctx context.Context, projectID uuid.UUID, voices models.JSONMap) error
	SetPipelineState(ctx context.Context, projectID uuid.UUID, status, lastStage string) error
	SetSegmentsCount(ctx context.Context, projectID uuid.UUID, count int) error
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAssets(ctx context.Context, projectID uuid.UUID) ([]*models.Asset, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}
