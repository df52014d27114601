package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/progress"
)

type progressRepo struct {
	db *sqlx.DB
}

func NewProgressRepo(db *sqlx.DB) progress.Repository {
	return &progressRepo{
		db: db,
	}
}

func (p *progressRepo) GetTarget(ctx context.Context, projectID uuid.UUID, languageCode string) (*models.Target, error) {
	target := &models.Target{}
	if err := p.db.QueryRowxContext(
		ctx,
		getTargetQuery,
		projectID,
		languageCode,
	).StructScan(target); err != nil {
		return nil, fmt.Errorf("failed to get target: %w", err)
	}
	return target, nil
}

func (p *progressRepo) ApplyTargetUpdate(ctx context.Context, projectID uuid.UUID, languageCode string, progressValue int, status models.TargetStatus) (bool, error) {
	res, err := p.db.ExecContext(
		ctx,
		applyTargetUpdateQuery,
		projectID,
		languageCode,
		progressValue,
		status,
	)
	if err != nil {
		return false, fmt.Errorf("failed to apply target update: %w", err)
	}
	count, _ := res.RowsAffected()
	return count > 0, nil
}

func (p *progressRepo) GetTargets(ctx context.Context, projectID uuid.UUID) ([]*models.Target, error) {
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

func (p *progressRepo) GetProjectTitle(ctx context.Context, projectID uuid.UUID) (string, error) {
	var title string
	if err := p.db.GetContext(ctx, &title, getProjectTitleQuery, projectID); err != nil {
		return "", fmt.Errorf("failed to get project title: %w", err)
	}
	return title, nil
}
