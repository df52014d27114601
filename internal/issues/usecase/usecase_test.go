package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

type fakeIssuesRepo struct {
	created []*models.Issue
	texts   []*issues.TranslationText
	byID    map[string]*issues.TranslationText
}

func (f *fakeIssuesRepo) CreateIssue(ctx context.Context, issue *models.Issue) (*models.Issue, error) {
	f.created = append(f.created, issue)
	return issue, nil
}

func (f *fakeIssuesRepo) GetIssuesByProject(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.Issue, error) {
	return f.created, nil
}

func (f *fakeIssuesRepo) SetResolved(ctx context.Context, issueID uuid.UUID, resolved bool) (bool, error) {
	return true, nil
}

func (f *fakeIssuesRepo) ListTranslationTexts(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*issues.TranslationText, error) {
	return f.texts, nil
}

func (f *fakeIssuesRepo) GetTranslationText(ctx context.Context, segmentID, languageCode string) (*issues.TranslationText, error) {
	text, ok := f.byID[segmentID]
	if !ok {
		return nil, errors.New("translation not found")
	}
	return text, nil
}

func (f *fakeIssuesRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeIssuesRepo) DeleteByTranslation(ctx context.Context, translationID string) (int64, error) {
	return 0, nil
}

type fakeCorrector struct {
	result *models.CorrectionResult
	err    error
	calls  int
}

func (f *fakeCorrector) Review(ctx context.Context, sourceText, targetText, languageCode string) (*models.CorrectionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestIssuesUC(repo *fakeIssuesRepo, corrector *fakeCorrector) issues.UseCase {
	cfg := &config.Config{Logger: config.Logger{Level: "error"}}
	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	if corrector == nil {
		corrector = &fakeCorrector{result: &models.CorrectionResult{}}
	}
	return NewIssuesUseCase(cfg, repo, corrector, log)
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestDetectFromReportQualityThresholds(t *testing.T) {
	cases := []struct {
		name     string
		score    float64
		severity models.IssueSeverity
		created  bool
	}{
		{"above threshold is clean", 71, "", false},
		{"at threshold is low", 70, models.SeverityLow, true},
		{"below 65 is medium", 64, models.SeverityMedium, true},
		{"below 50 is high", 49, models.SeverityHigh, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeIssuesRepo{}
			uc := newTestIssuesUC(repo, nil)

			report := &models.QualityReport{Q: models.QualityScores{STT: floatPtr(tc.score)}}
			created, err := uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", report)
			require.NoError(t, err)

			if !tc.created {
				assert.Zero(t, created)
				assert.Empty(t, repo.created)
				return
			}
			require.Equal(t, 1, created)
			issue := repo.created[0]
			assert.Equal(t, models.IssueSTTQuality, issue.IssueType)
			assert.Equal(t, tc.severity, issue.Severity)
			require.NotNil(t, issue.Score)
			assert.Equal(t, tc.score, *issue.Score)
			assert.Equal(t, "tr-1", issue.TranslationID)
		})
	}
}

func TestDetectFromReportTTSQuality(t *testing.T) {
	repo := &fakeIssuesRepo{}
	uc := newTestIssuesUC(repo, nil)

	report := &models.QualityReport{Q: models.QualityScores{TTS: floatPtr(55)}}
	created, err := uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", report)
	require.NoError(t, err)
	require.Equal(t, 1, created)
	assert.Equal(t, models.IssueTTSQuality, repo.created[0].IssueType)
	assert.Equal(t, models.SeverityMedium, repo.created[0].Severity)
}

func TestDetectFromReportSyncThresholds(t *testing.T) {
	cases := []struct {
		name     string
		diff     float64
		severity models.IssueSeverity
		created  bool
	}{
		{"small drift is clean", 9.9, "", false},
		{"ten seconds is low", 10, models.SeverityLow, true},
		{"fifteen seconds is medium", 15, models.SeverityMedium, true},
		{"twenty seconds is high", 20, models.SeverityHigh, true},
		{"negative drift uses magnitude", -16, models.SeverityMedium, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeIssuesRepo{}
			uc := newTestIssuesUC(repo, nil)

			report := &models.QualityReport{Q: models.QualityScores{Sync: floatPtr(tc.diff)}}
			created, err := uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", report)
			require.NoError(t, err)

			if !tc.created {
				assert.Zero(t, created)
				return
			}
			require.Equal(t, 1, created)
			issue := repo.created[0]
			assert.Equal(t, models.IssueSyncDuration, issue.IssueType)
			assert.Equal(t, tc.severity, issue.Severity)
			require.NotNil(t, issue.Diff)
			assert.Equal(t, tc.diff, *issue.Diff)
		})
	}
}

func TestDetectFromReportSpeakerIdentification(t *testing.T) {
	repo := &fakeIssuesRepo{}
	uc := newTestIssuesUC(repo, nil)

	// spk=true means identification failed on the worker.
	report := &models.QualityReport{Spk: boolPtr(true)}
	created, err := uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", report)
	require.NoError(t, err)
	require.Equal(t, 1, created)
	assert.Equal(t, models.IssueSpeakerIdent, repo.created[0].IssueType)
	assert.Equal(t, models.SeverityMedium, repo.created[0].Severity)

	repo.created = nil
	for _, report := range []*models.QualityReport{{Spk: boolPtr(false)}, {}} {
		created, err = uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", report)
		require.NoError(t, err)
		assert.Zero(t, created)
	}
}

func TestDetectFromReportMultipleFindings(t *testing.T) {
	repo := &fakeIssuesRepo{}
	uc := newTestIssuesUC(repo, nil)

	report := &models.QualityReport{
		Q: models.QualityScores{
			STT:  floatPtr(40),
			TTS:  floatPtr(60),
			Sync: floatPtr(22),
		},
		Spk: boolPtr(true),
	}
	created, err := uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", report)
	require.NoError(t, err)
	assert.Equal(t, 4, created)
}

func TestDetectFromReportNilReport(t *testing.T) {
	repo := &fakeIssuesRepo{}
	uc := newTestIssuesUC(repo, nil)

	created, err := uc.DetectFromReport(context.Background(), uuid.New(), "es", "tr-1", nil)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestDetectForSegmentResolvesTranslation(t *testing.T) {
	repo := &fakeIssuesRepo{
		byID: map[string]*issues.TranslationText{
			"seg-1": {TranslationID: "tr-42", SegmentID: "seg-1"},
		},
	}
	uc := newTestIssuesUC(repo, nil)

	report := &models.QualityReport{Q: models.QualityScores{TTS: floatPtr(30)}}
	created, err := uc.DetectForSegment(context.Background(), uuid.New(), "es", "seg-1", report)
	require.NoError(t, err)
	require.Equal(t, 1, created)
	assert.Equal(t, "tr-42", repo.created[0].TranslationID)

	_, err = uc.DetectForSegment(context.Background(), uuid.New(), "es", "missing", report)
	assert.Error(t, err)
}

func TestSweepProject(t *testing.T) {
	repo := &fakeIssuesRepo{
		texts: []*issues.TranslationText{
			{TranslationID: "tr-1", SegmentID: "seg-1", SourceText: "hello", TargetText: "bonjour"},
			{TranslationID: "tr-2", SegmentID: "seg-2", SourceText: "", TargetText: "skipped"},
			{TranslationID: "tr-3", SegmentID: "seg-3", SourceText: "world", TargetText: "monde"},
		},
	}
	corrector := &fakeCorrector{
		result: &models.CorrectionResult{
			Issues: []models.CorrectionIssue{
				{Message: "glossary term mistranslated", From: "monde", To: "Monde", Kind: "glossary"},
			},
		},
	}
	uc := newTestIssuesUC(repo, corrector)

	created, err := uc.SweepProject(context.Background(), uuid.New(), "fr")
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	// Segments missing either text never reach the corrector.
	assert.Equal(t, 2, corrector.calls)

	issue := repo.created[0]
	assert.Equal(t, models.IssueGlossary, issue.IssueType)
	assert.Equal(t, models.SeverityLow, issue.Severity)
	assert.Equal(t, "glossary term mistranslated", issue.Details["message"])
}

func TestSweepProjectCorrectorFailureIsSkipped(t *testing.T) {
	repo := &fakeIssuesRepo{
		texts: []*issues.TranslationText{
			{TranslationID: "tr-1", SegmentID: "seg-1", SourceText: "a", TargetText: "b"},
		},
	}
	uc := newTestIssuesUC(repo, &fakeCorrector{err: errors.New("service unavailable")})

	created, err := uc.SweepProject(context.Background(), uuid.New(), "fr")
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, repo.created)
}

func TestSuggestCorrection(t *testing.T) {
	repo := &fakeIssuesRepo{
		byID: map[string]*issues.TranslationText{
			"seg-1": {TranslationID: "tr-1", SegmentID: "seg-1", SourceText: "hello", TargetText: "bonjour"},
			"seg-2": {TranslationID: "tr-2", SegmentID: "seg-2", SourceText: "hello"},
		},
	}
	corrector := &fakeCorrector{result: &models.CorrectionResult{CorrectedText: "Bonjour"}}
	uc := newTestIssuesUC(repo, corrector)

	result, err := uc.SuggestCorrection(context.Background(), "seg-1", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", result.CorrectedText)

	_, err = uc.SuggestCorrection(context.Background(), "seg-2", "fr")
	assert.Error(t, err)
}
