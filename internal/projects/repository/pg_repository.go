package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/projects"
)

type projectsRepo struct {
	db *sqlx.DB
}

func NewProjectsRepo(db *sqlx.DB) projects.Repository {
	return &projectsRepo{
		db: db,
	}
}

func (p *projectsRepo) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	created := &models.Project{}
	if err := p.db.QueryRowxContext(
		ctx,
		createProjectQuery,
		project.OwnerID,
		project.Title,
		project.Status,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (p *projectsRepo) GetProjectByID(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	project := &models.Project{}
	if err := p.db.QueryRowxContext(
		ctx,
		getProjectByIDQuery,
		projectID,
	).StructScan(project); err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}
	return project, nil
}

func (p *projectsRepo) GetProjectsByOwner(ctx context.Context, ownerID string) ([]*models.Project, error) {
	rows, err := p.db.QueryxContext(ctx, getProjectsByOwnerQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects by owner: %w", err)
	}
	defer rows.Close()
	var result = make([]*models.Project, 0)
	for rows.Next() {
		var project models.Project
		if err = rows.StructScan(&project); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		result = append(result, &project)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return result, nil
}

func (p *projectsRepo) CreateTargets(ctx context.Context, projectID uuid.UUID, languages []string) ([]*models.Target, error) {
	targets := make([]*models.Target, 0, len(languages))
	for _, lang := range languages {
		target := &models.Target{}
		if err := p.db.QueryRowxContext(
			ctx,
			createTargetQuery,
			projectID,
			lang,
		).StructScan(target); err != nil {
			return nil, fmt.Errorf("failed to create target %s: %w", lang, err)
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func (p *projectsRepo) GetTargets(ctx context.Context, projectID uuid.UUID) ([]*models.Target, error) {
	rows, err := p.db.QueryxContext(ctx, getTargetsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get targets: %w", err)
	}
	defer rows.Close()
	var targets = make([]*models.Target, 0)
	for rows.Next() {
		var target models.Target
		if err = rows.StructScan(&target); err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets = append(targets, &target)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan targets: %w", err)
	}
	return targets, nil
}

func (p *projectsRepo) FirstTargetLanguage(ctx context.Context, projectID uuid.UUID) (string, error) {
	var lang string
	if err := p.db.GetContext(ctx, &lang, firstTargetLanguageQuery, projectID); err != nil {
		return "", fmt.Errorf("failed to get first target language: %w", err)
	}
	return lang, nil
}

func (p *projectsRepo) SetVideoKey(ctx context.Context, projectID uuid.UUID, videoKey string) error {
	if _, err := p.db.ExecContext(ctx, setVideoKeyQuery, projectID, videoKey); err != nil {
		return fmt.Errorf("failed to set video key: %w", err)
	}
	return nil
}

func (p *projectsRepo) SetSourceKeys(ctx context.Context, projectID uuid.UUID, keys models.SourceKeys) error {
	if _, err := p.db.ExecContext(
		ctx,
		setSourceKeysQuery,
		projectID,
		keys.AudioKey,
		keys.VocalsKey,
		keys.BackgroundKey,
	); err != nil {
		return fmt.Errorf("failed to set source keys: %w", err)
	}
	return nil
}

func (p *projectsRepo) MergeSpeakerVoices(ctx context.Context, projectID uuid.UUID, voices models.JSONMap) error {
	if len(voices) == 0 {
		return nil
	}
	if _, err := p.db.ExecContext(ctx, mergeSpeakerVoicesQuery, projectID, voices); err != nil {
		return fmt.Errorf("failed to merge speaker voices: %w", err)
	}
	return nil
}

func (p *projectsRepo) SetPipelineState(ctx context.Context, projectID uuid.UUID, status, lastStage string) error {
	if _, err := p.db.ExecContext(ctx, setPipelineStateQuery, projectID, status, lastStage); err != nil {
		return fmt.Errorf("failed to set pipeline state: %w", err)
	}
	return nil
}

func (p *projectsRepo) SetSegmentsCount(ctx context.Context, projectID uuid.UUID, count int) error {
	if _, err := p.db.ExecContext(ctx, setSegmentsCountQuery, projectID, count); err != nil {
		return fmt.Errorf("failed to set segments count: %w", err)
	}
	return nil
}

func (p *projectsRepo) CreateAsset(ctx context.Context, asset *models.Asset) error {
	if _, err := p.db.ExecContext(
		ctx,
		createAssetQuery,
		asset.ProjectID,
		asset.LanguageCode,
		asset.AssetType,
		asset.FilePath,
	); err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (p *projectsRepo) GetAssets(ctx context.Context, projectID uuid.UUID) ([]*models.Asset, error) {
	rows, err := p.db.QueryxContext(ctx, getAssetsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}
	defer rows.Close()
	var result = make([]*models.Asset, 0)
	for rows.Next() {
		var asset models.Asset
		if err = rows.StructScan(&asset); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		result = append(result, &asset)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	return result, nil
}

func (p *projectsRepo) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	res, err := p.db.ExecContext(ctx, deleteProjectQuery, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return fmt.Errorf("no project found to delete")
	}
	return nil
}
