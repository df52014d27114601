package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

// Worker quality scores run 0-100; sync is a signed duration delta in seconds.
const (
	qualityThreshold = 70
	syncThreshold    = 10
)

type issuesUC struct {
	cfg        *config.Config
	issuesRepo issues.Repository
	corrector  issues.Corrector
	logger     logger.Logger
}

func NewIssuesUseCase(
	cfg *config.Config,
	issuesRepo issues.Repository,
	corrector issues.Corrector,
	log logger.Logger,
) issues.UseCase {
	return &issuesUC{
		cfg:        cfg,
		issuesRepo: issuesRepo,
		corrector:  corrector,
		logger:     log,
	}
}

func qualitySeverity(score float64) models.IssueSeverity {
	switch {
	case score < 50:
		return models.SeverityHigh
	case score < 65:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func syncSeverity(diff float64) models.IssueSeverity {
	switch {
	case diff >= 20:
		return models.SeverityHigh
	case diff >= 15:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func (u *issuesUC) DetectFromReport(ctx context.Context, projectID uuid.UUID, languageCode, translationID string, report *models.QualityReport) (int, error) {
	if report == nil {
		return 0, nil
	}

	created := 0
	add := func(issue *models.Issue) error {
		issue.TranslationID = translationID
		issue.ProjectID = projectID
		issue.LanguageCode = languageCode
		if _, err := u.issuesRepo.CreateIssue(ctx, issue); err != nil {
			return err
		}
		created++
		return nil
	}

	if stt := report.Q.STT; stt != nil && *stt <= qualityThreshold {
		if err := add(&models.Issue{
			IssueType: models.IssueSTTQuality,
			Severity:  qualitySeverity(*stt),
			Score:     stt,
			Details:   models.JSONMap{"message": fmt.Sprintf("STT quality score is low: %g", *stt)},
		}); err != nil {
			return created, err
		}
	}

	if tts := report.Q.TTS; tts != nil && *tts <= qualityThreshold {
		if err := add(&models.Issue{
			IssueType: models.IssueTTSQuality,
			Severity:  qualitySeverity(*tts),
			Score:     tts,
			Details:   models.JSONMap{"message": fmt.Sprintf("TTS quality score is low: %g", *tts)},
		}); err != nil {
			return created, err
		}
	}

	if sync := report.Q.Sync; sync != nil && math.Abs(*sync) >= syncThreshold {
		if err := add(&models.Issue{
			IssueType: models.IssueSyncDuration,
			Severity:  syncSeverity(math.Abs(*sync)),
			Diff:      sync,
			Details:   models.JSONMap{"message": fmt.Sprintf("Duration difference is too large: %gs", *sync)},
		}); err != nil {
			return created, err
		}
	}

	if report.Spk != nil && *report.Spk {
		if err := add(&models.Issue{
			IssueType: models.IssueSpeakerIdent,
			Severity:  models.SeverityMedium,
			Details:   models.JSONMap{"message": "Speaker identification failed, using default voice"},
		}); err != nil {
			return created, err
		}
	}

	return created, nil
}

func (u *issuesUC) DetectForSegment(ctx context.Context, projectID uuid.UUID, languageCode, segmentID string, report *models.QualityReport) (int, error) {
	if report == nil {
		return 0, nil
	}
	text, err := u.issuesRepo.GetTranslationText(ctx, segmentID, languageCode)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve translation for segment %s: %v", segmentID, err)
	}
	return u.DetectFromReport(ctx, projectID, languageCode, text.TranslationID, report)
}

func (u *issuesUC) SweepProject(ctx context.Context, projectID uuid.UUID, languageCode string) (int, error) {
	texts, err := u.issuesRepo.ListTranslationTexts(ctx, projectID, languageCode)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, text := range texts {
		if text.SourceText == "" || text.TargetText == "" {
			continue
		}
		result, err := u.corrector.Review(ctx, text.SourceText, text.TargetText, languageCode)
		if err != nil {
			u.logger.Warnf("SweepProject - corrector failed for segment %s: %v", text.SegmentID, err)
			continue
		}
		for _, finding := range result.Issues {
			issue := &models.Issue{
				TranslationID: text.TranslationID,
				ProjectID:     projectID,
				LanguageCode:  languageCode,
				IssueType:     models.IssueGlossary,
				Severity:      models.SeverityLow,
				Details: models.JSONMap{
					"message": finding.Message,
					"from":    finding.From,
					"to":      finding.To,
					"kind":    finding.Kind,
				},
			}
			if _, err = u.issuesRepo.CreateIssue(ctx, issue); err != nil {
				u.logger.Errorf("SweepProject - CreateIssue error: %v", err)
				continue
			}
			created++
		}
	}
	return created, nil
}

func (u *issuesUC) GetIssues(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.Issue, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("invalid project id: cannot be empty")
	}
	result, err := u.issuesRepo.GetIssuesByProject(ctx, projectID, languageCode)
	if err != nil {
		u.logger.Errorf("GetIssues - failed to fetch issues: %v", err)
		return nil, fmt.Errorf("failed to fetch issues: %v", err)
	}
	return result, nil
}

func (u *issuesUC) ResolveIssue(ctx context.Context, issueID uuid.UUID, resolved bool) error {
	updated, err := u.issuesRepo.SetResolved(ctx, issueID, resolved)
	if err != nil {
		u.logger.Errorf("ResolveIssue - SetResolved error: %v", err)
		return fmt.Errorf("failed to update issue: %v", err)
	}
	if !updated {
		return fmt.Errorf("issue not found")
	}
	return nil
}

func (u *issuesUC) SuggestCorrection(ctx context.Context, segmentID, languageCode string) (*models.CorrectionResult, error) {
	text, err := u.issuesRepo.GetTranslationText(ctx, segmentID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch segment texts: %v", err)
	}
	if text.SourceText == "" || text.TargetText == "" {
		return nil, fmt.Errorf("segment missing source or translated text")
	}
	result, err := u.corrector.Review(ctx, text.SourceText, text.TargetText, languageCode)
	if err != nil {
		u.logger.Errorf("SuggestCorrection - corrector error: %v", err)
		return nil, fmt.Errorf("correction service failed: %v", err)
	}
	return result, nil
}
