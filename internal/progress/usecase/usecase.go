package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/events"
	"github.com/dubwise/dubwise-backend/internal/metrics"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/pipeline"
	"github.com/dubwise/dubwise-backend/internal/progress"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

type progressUC struct {
	cfg          *config.Config
	progressRepo progress.Repository
	hub          *events.Hub
	logger       logger.Logger
}

func NewProgressUseCase(
	cfg *config.Config,
	progressRepo progress.Repository,
	hub *events.Hub,
	log logger.Logger,
) progress.UseCase {
	return &progressUC{
		cfg:          cfg,
		progressRepo: progressRepo,
		hub:          hub,
		logger:       log,
	}
}

func (p *progressUC) Apply(ctx context.Context, projectID uuid.UUID, languageCode string, interp *pipeline.Interpretation, message string) (bool, error) {
	applied, err := p.progressRepo.ApplyTargetUpdate(ctx, projectID, languageCode, interp.Progress, interp.Status)
	if err != nil {
		return false, err
	}
	if !applied {
		p.logger.Infof("target %s/%s already completed, skipping stage %s", projectID, languageCode, interp.Stage)
		metrics.StaleCallbacksTotal.Inc()
		return false, nil
	}

	title, err := p.progressRepo.GetProjectTitle(ctx, projectID)
	if err != nil {
		p.logger.Warnf("Apply - GetProjectTitle error: %v", err)
	}

	p.hub.Publish(models.ProgressEvent{
		EventType:    models.EventTargetProgress,
		ProjectID:    projectID.String(),
		ProjectTitle: title,
		TargetLang:   languageCode,
		Status:       interp.Status,
		Progress:     interp.Progress,
		Stage:        interp.Stage,
		StageName:    interp.StageName,
		Message:      message,
	})

	summary, err := p.summary(ctx, projectID)
	if err != nil {
		p.logger.Warnf("Apply - summary error: %v", err)
		return true, nil
	}

	status := models.TargetProcessing
	switch {
	case summary.CompletedCount == summary.TotalCount && summary.TotalCount > 0:
		status = models.TargetCompleted
	case interp.Status == models.TargetFailed:
		status = models.TargetFailed
	}

	p.hub.Publish(models.ProgressEvent{
		EventType:    models.EventProjectProgress,
		ProjectID:    projectID.String(),
		ProjectTitle: title,
		Status:       status,
		Progress:     summary.OverallProgress,
		Stage:        interp.Stage,
		StageName:    interp.StageName,
	})

	return true, nil
}

func (p *progressUC) summary(ctx context.Context, projectID uuid.UUID) (*models.ProgressSummary, error) {
	targets, err := p.progressRepo.GetTargets(ctx, projectID)
	if err != nil {
		return nil, err
	}

	summary := &models.ProgressSummary{
		TargetProgresses: make(map[string]models.TargetProgress, len(targets)),
		TotalCount:       len(targets),
	}
	total := 0
	for _, target := range targets {
		summary.TargetProgresses[target.LanguageCode] = models.TargetProgress{
			Progress: target.Progress,
			Status:   target.Status,
		}
		total += target.Progress
		if target.Status == models.TargetCompleted {
			summary.CompletedCount++
		}
	}
	if len(targets) > 0 {
		summary.OverallProgress = total / len(targets)
	}
	return summary, nil
}

func (p *progressUC) GetSummary(ctx context.Context, projectID uuid.UUID) (*models.ProgressSummary, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("invalid project id: cannot be empty")
	}
	summary, err := p.summary(ctx, projectID)
	if err != nil {
		p.logger.Errorf("GetSummary - failed to fetch targets: %v", err)
		return nil, fmt.Errorf("failed to fetch progress: %v", err)
	}
	return summary, nil
}
