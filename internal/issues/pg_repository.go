package issues

import (
	"context"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/models"
)

// TranslationText pairs a translation with its segment's source text, the
// unit the corrector reviews.
type TranslationText struct {
	TranslationID string `db:"translation_id"`
	SegmentID     string `db:"segment_id"`
	SourceText    string `db:"source_text"`
	TargetText    string `db:"target_text"`
}

type Repository interface {
	CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error)
	GetIssuesByProject(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.Issue, error)
	SetResolved(ctx context.Context, issueID uuid.UUID, resolved bool) (bool, error)
	ListTranslationTexts(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*TranslationText, error)
	GetTranslationText(ctx context.Context, segmentID, languageCode string) (*TranslationText, error)
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
	DeleteByTranslation(ctx context.Context, translationID string) (int64, error)
}
