package issues

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

type UseCase interface {
	// DetectFromReport turns a worker quality report into stored issues and
	// returns how many were created.
	DetectFromReport(ctx context.Context, projectID uuid.UUID, languageCode, translationID string, report *models.QualityReport) (int, error)
	// DetectForSegment resolves the segment's translation first, then records
	// the report against it.
	DetectForSegment(ctx context.Context, projectID uuid.UUID, languageCode, segmentID string, report *models.QualityReport) (int, error)
	// SweepProject runs the glossary corrector over every translated segment.
	// Individual segment failures are logged and skipped.
	SweepProject(ctx context.Context, projectID uuid.UUID, languageCode string) (int, error)
	GetIssues(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.Issue, error)
	ResolveIssue(ctx context.Context, issueID uuid.UUID, resolved bool) error
	SuggestCorrection(ctx context.Context, segmentID, languageCode string) (*models.CorrectionResult, error)
}
