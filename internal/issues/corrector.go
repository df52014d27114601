package issues

import (
	"context"

	"github.com/dubwise/dubwise-backend/internal/models"
)

// Corrector reviews a translated segment against the glossary and returns a
// corrected rendering plus the violations found.
type Corrector interface {
	Review(ctx context.Context, sourceText, targetText, languageCode string) (*models.CorrectionResult, error)
}
