package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/projects"
	"github.com/dubwise/dubwise-backend/internal/storage"
	"github.com/dubwise/dubwise-backend/pkg/logger"
	"github.com/dubwise/dubwise-backend/pkg/utils"
)

var ErrProjectNotFound = errors.New("project not found")

type projectsUC struct {
	cfg          *config.Config
	projectsRepo projects.Repository
	blobRepo     storage.BlobRepository
	logger       logger.Logger
}

func NewProjectsUseCase(
	cfg *config.Config,
	projectsRepo projects.Repository,
	blobRepo storage.BlobRepository,
	log logger.Logger,
) projects.UseCase {
	return &projectsUC{
		cfg:          cfg,
		projectsRepo: projectsRepo,
		blobRepo:     blobRepo,
		logger:       log,
	}
}

func (p *projectsUC) CreateProject(ctx context.Context, input *models.ProjectCreateInput) (*models.ProjectWithTargets, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		p.logger.Errorf("CreateProject - GetUserIDFromCtx error: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		p.logger.Errorf("CreateProject - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}

	project := &models.Project{
		OwnerID: userID,
		Title:   input.Title,
		Status:  string(models.TargetPending),
	}
	project, err = p.projectsRepo.CreateProject(ctx, project)
	if err != nil {
		p.logger.Errorf("CreateProject - CreateProject error: %v", err)
		return nil, err
	}

	targets, err := p.projectsRepo.CreateTargets(ctx, project.ProjectID, input.TargetLanguages)
	if err != nil {
		p.logger.Errorf("CreateProject - CreateTargets error: %v", err)
		return nil, err
	}

	return &models.ProjectWithTargets{Project: project, Targets: targets}, nil
}

func (p *projectsUC) GetProject(ctx context.Context, projectID uuid.UUID) (*models.ProjectWithTargets, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("invalid project id: cannot be empty")
	}
	project, err := p.projectsRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		p.logger.Errorf("GetProject - failed to fetch project: %v", err)
		return nil, fmt.Errorf("failed to fetch project: %v", err)
	}
	targets, err := p.projectsRepo.GetTargets(ctx, projectID)
	if err != nil {
		p.logger.Errorf("GetProject - failed to fetch targets: %v", err)
		return nil, fmt.Errorf("failed to fetch targets: %v", err)
	}
	return &models.ProjectWithTargets{Project: project, Targets: targets}, nil
}

func (p *projectsUC) ListProjects(ctx context.Context) ([]*models.Project, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		p.logger.Errorf("ListProjects - GetUserIDFromCtx error: %v", err)
		return nil, err
	}
	result, err := p.projectsRepo.GetProjectsByOwner(ctx, userID)
	if err != nil {
		p.logger.Errorf("ListProjects - failed to fetch projects: %v", err)
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	return result, nil
}

func (p *projectsUC) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if projectID == uuid.Nil {
		return fmt.Errorf("invalid project id: cannot be empty")
	}
	if err := p.projectsRepo.DeleteProject(ctx, projectID); err != nil {
		p.logger.Errorf("DeleteProject - failed to delete project: %v", err)
		return fmt.Errorf("failed to delete project: %v", err)
	}
	return nil
}

func (p *projectsUC) GetAssets(ctx context.Context, projectID uuid.UUID) ([]*models.Asset, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("invalid project id: cannot be empty")
	}
	result, err := p.projectsRepo.GetAssets(ctx, projectID)
	if err != nil {
		p.logger.Errorf("GetAssets - failed to fetch assets: %v", err)
		return nil, fmt.Errorf("failed to fetch assets: %v", err)
	}
	return result, nil
}

func (p *projectsUC) GetUploadURL(ctx context.Context, projectID uuid.UUID, input *models.UploadInput) (string, error) {
	if input == nil {
		return "", fmt.Errorf("invalid input: input is nil")
	}
	if err := utils.ValidateStruct(ctx, input); err != nil {
		p.logger.Errorf("GetUploadURL - ValidateStruct error: %v", err)
		return "", err
	}

	input.BucketName = p.cfg.S3.MediaBucket
	input.Key = fmt.Sprintf("projects/%s/source/%s", projectID, input.Name)

	url, err := p.blobRepo.GetPresignedURL(ctx, input)
	if err != nil {
		p.logger.Errorf("GetUploadURL - GetPresignedURL error: %v", err)
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}

	if err = p.projectsRepo.SetVideoKey(ctx, projectID, input.Key); err != nil {
		p.logger.Errorf("GetUploadURL - SetVideoKey error: %v", err)
		return "", err
	}

	return url, nil
}
