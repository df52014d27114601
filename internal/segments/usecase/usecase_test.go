package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

type fakeSegmentsRepo struct {
	segments     map[int]models.SegmentRecord
	ids          map[int]string
	translations map[string]*models.SegmentTranslation
	audioSet     map[string]string

	countErr  error
	insertErr error
}

func newFakeSegmentsRepo() *fakeSegmentsRepo {
	return &fakeSegmentsRepo{
		segments:     make(map[int]models.SegmentRecord),
		ids:          make(map[int]string),
		translations: make(map[string]*models.SegmentTranslation),
		audioSet:     make(map[string]string),
	}
}

func (f *fakeSegmentsRepo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.segments), nil
}

func (f *fakeSegmentsRepo) InsertSegments(ctx context.Context, projectID uuid.UUID, records []models.SegmentRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, record := range records {
		f.segments[record.Index] = record
		f.ids[record.Index] = fmt.Sprintf("seg-%d", record.Index)
	}
	return nil
}

func (f *fakeSegmentsRepo) IndexIDMap(ctx context.Context, projectID uuid.UUID) (map[int]string, error) {
	return f.ids, nil
}

func (f *fakeSegmentsRepo) UpsertTranslation(ctx context.Context, translation *models.SegmentTranslation) error {
	f.translations[translation.SegmentID+"/"+translation.LanguageCode] = translation
	return nil
}

func (f *fakeSegmentsRepo) SetTranslationAudio(ctx context.Context, segmentID, languageCode, audioKey string) error {
	if _, ok := f.translations[segmentID+"/"+languageCode]; !ok {
		return fmt.Errorf("no translation for segment %s language %s", segmentID, languageCode)
	}
	f.audioSet[segmentID+"/"+languageCode] = audioKey
	return nil
}

func (f *fakeSegmentsRepo) GetSegmentsWithTranslations(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.SegmentWithTranslations, error) {
	return nil, nil
}

func (f *fakeSegmentsRepo) UpdateSegment(ctx context.Context, segmentID string, edit *models.SegmentEdit) (bool, error) {
	return false, nil
}

func (f *fakeSegmentsRepo) UpdateTranslation(ctx context.Context, segmentID, languageCode string, edit *models.SegmentEdit) (bool, error) {
	return false, nil
}

func (f *fakeSegmentsRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return nil
}

type fakeBlobRepo struct {
	documents map[string][]byte
	fetchErr  error
}

func (f *fakeBlobRepo) GetPresignedURL(ctx context.Context, input *models.UploadInput) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeBlobRepo) PutObject(ctx context.Context, input models.UploadInput) (*s3.PutObjectOutput, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBlobRepo) GetObject(ctx context.Context, bucket, fileKey string) (*s3.GetObjectOutput, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBlobRepo) FetchDocument(ctx context.Context, bucket, fileKey string, dst interface{}) error {
	if f.fetchErr != nil {
		return f.fetchErr
	}
	raw, ok := f.documents[fileKey]
	if !ok {
		return fmt.Errorf("no such document: %s", fileKey)
	}
	return json.Unmarshal(raw, dst)
}

func (f *fakeBlobRepo) Exists(ctx context.Context, bucket, fileKey string) (bool, error) {
	return false, nil
}

func (f *fakeBlobRepo) RemoveObject(ctx context.Context, bucket, filename string) error {
	return nil
}

func newTestSegmentsUC(repo *fakeSegmentsRepo, blob *fakeBlobRepo) *segmentsUC {
	cfg := &config.Config{
		S3:     config.S3Config{MediaBucket: "media"},
		Logger: config.Logger{Level: "error"},
	}
	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	if blob == nil {
		blob = &fakeBlobRepo{}
	}
	return NewSegmentsUseCase(cfg, repo, blob, log).(*segmentsUC)
}

func intPtr(v int) *int { return &v }

func TestNormalizeInline(t *testing.T) {
	inline := []models.InlineSegment{
		{SegIdx: intPtr(2), Speaker: "SPEAKER_01", Start: 1.5, End: 3.2, PromptText: "hello there", AudioFile: "seg2.wav"},
		{Speaker: "SPEAKER_00", Start: 3.2, End: 5.0, PromptText: "how are you"},
	}
	translations := []string{"", "comment vas-tu", "bonjour"}

	records := NormalizeInline(inline, translations)
	require.Len(t, records, 2)

	// Explicit seg_idx wins over the slice position, and the translations
	// list is indexed by segment index.
	assert.Equal(t, 2, records[0].Index)
	assert.Equal(t, "hello there", records[0].SourceText)
	assert.Equal(t, "bonjour", records[0].TargetText)
	assert.Equal(t, "seg2.wav", records[0].AudioKey)

	assert.Equal(t, 1, records[1].Index)
	assert.Equal(t, "comment vas-tu", records[1].TargetText)
}

func TestNormalizeInlinePromptTextFallback(t *testing.T) {
	inline := []models.InlineSegment{
		{Start: 0, End: 1, PromptText: "untranslated"},
	}
	records := NormalizeInline(inline, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "untranslated", records[0].SourceText)
	assert.Equal(t, "untranslated", records[0].TargetText)
}

func TestNormalizeTranscriptMilliseconds(t *testing.T) {
	doc := &models.TranscriptDocument{
		Unit:     "ms",
		Speakers: []string{"alice"},
		Segments: []models.TranscriptSegment{
			{Start: 1500, End: 3200, SpeakerIdx: 0, Text: "guten tag"},
			{Start: 3200, End: 5000, SpeakerIdx: 3, Text: "wie gehts"},
		},
	}

	records := NormalizeTranscript(doc, []string{"good day"})
	require.Len(t, records, 2)

	assert.InDelta(t, 1.5, records[0].Start, 1e-9)
	assert.InDelta(t, 3.2, records[0].End, 1e-9)
	assert.Equal(t, "alice", records[0].SpeakerTag)
	assert.Equal(t, "good day", records[0].TargetText)

	// Out-of-range speaker index falls back to a synthetic tag.
	assert.Equal(t, "SPEAKER_03", records[1].SpeakerTag)
	assert.Equal(t, "wie gehts", records[1].TargetText)
}

func TestNormalizeTranscriptSecondsUnit(t *testing.T) {
	doc := &models.TranscriptDocument{
		Segments: []models.TranscriptSegment{{Start: 1.5, End: 3.2, Text: "hola"}},
	}
	records := NormalizeTranscript(doc, nil)
	require.Len(t, records, 1)
	assert.InDelta(t, 1.5, records[0].Start, 1e-9)
}

func TestMaterializeFirstLanguageCreatesSegments(t *testing.T) {
	repo := newFakeSegmentsRepo()
	uc := newTestSegmentsUC(repo, nil)
	projectID := uuid.New()

	meta := &models.CallbackMetadata{
		Segments: []models.InlineSegment{
			{Start: 0, End: 1, PromptText: "one", AudioFile: "one.wav"},
			{Start: 1, End: 2, PromptText: "two"},
		},
		Translations: []string{"uno", "dos"},
	}

	count, err := uc.Materialize(context.Background(), projectID, "es", meta)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, repo.segments, 2)

	tr := repo.translations["seg-0/es"]
	require.NotNil(t, tr)
	assert.Equal(t, "uno", tr.TargetText)
	require.NotNil(t, tr.AudioKey)
	assert.Equal(t, "one.wav", *tr.AudioKey)

	tr = repo.translations["seg-1/es"]
	require.NotNil(t, tr)
	assert.Nil(t, tr.AudioKey)
}

func TestMaterializeSecondLanguageOnlyTranslates(t *testing.T) {
	repo := newFakeSegmentsRepo()
	uc := newTestSegmentsUC(repo, nil)
	projectID := uuid.New()

	meta := &models.CallbackMetadata{
		Segments: []models.InlineSegment{{Start: 0, End: 1, PromptText: "one"}},
	}

	_, err := uc.Materialize(context.Background(), projectID, "es", meta)
	require.NoError(t, err)
	require.Len(t, repo.segments, 1)
	firstSegments := repo.segments[0]

	meta.Translations = []string{"ein"}
	count, err := uc.Materialize(context.Background(), projectID, "de", meta)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The base row is untouched; only a new translation appears.
	assert.Equal(t, firstSegments, repo.segments[0])
	require.NotNil(t, repo.translations["seg-0/de"])
	assert.Equal(t, "ein", repo.translations["seg-0/de"].TargetText)
}

func TestMaterializeFromTranscriptDocument(t *testing.T) {
	doc, err := json.Marshal(models.TranscriptDocument{
		Unit:     "ms",
		Speakers: []string{"host"},
		Segments: []models.TranscriptSegment{{Start: 0, End: 900, SpeakerIdx: 0, Text: "welcome"}},
	})
	require.NoError(t, err)

	repo := newFakeSegmentsRepo()
	blob := &fakeBlobRepo{documents: map[string][]byte{"projects/p/meta.json": doc}}
	uc := newTestSegmentsUC(repo, blob)

	meta := &models.CallbackMetadata{MetadataKey: "projects/p/meta.json", Translations: []string{"bienvenue"}}
	count, err := uc.Materialize(context.Background(), uuid.New(), "fr", meta)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "host", repo.segments[0].SpeakerTag)
	assert.Equal(t, "bienvenue", repo.translations["seg-0/fr"].TargetText)
}

func TestMaterializeBlobFetchError(t *testing.T) {
	repo := newFakeSegmentsRepo()
	blob := &fakeBlobRepo{fetchErr: errors.New("connection refused")}
	uc := newTestSegmentsUC(repo, blob)

	meta := &models.CallbackMetadata{MetadataKey: "missing.json"}
	_, err := uc.Materialize(context.Background(), uuid.New(), "fr", meta)
	assert.Error(t, err)
	assert.Empty(t, repo.segments)
}

func TestMaterializeEmptyPayloadReturnsExistingCount(t *testing.T) {
	repo := newFakeSegmentsRepo()
	uc := newTestSegmentsUC(repo, nil)
	projectID := uuid.New()

	require.NoError(t, repo.InsertSegments(context.Background(), projectID, []models.SegmentRecord{
		{Index: 0}, {Index: 1}, {Index: 2},
	}))

	count, err := uc.Materialize(context.Background(), projectID, "es", &models.CallbackMetadata{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Empty(t, repo.translations)
}

func TestRetargetSegment(t *testing.T) {
	repo := newFakeSegmentsRepo()
	uc := newTestSegmentsUC(repo, nil)
	repo.translations["seg-5/es"] = &models.SegmentTranslation{SegmentID: "seg-5", LanguageCode: "es"}

	meta := &models.CallbackMetadata{
		SegmentID: "seg-5",
		Segments:  []models.InlineSegment{{AudioFile: "seg5-v2.wav"}},
	}
	require.NoError(t, uc.RetargetSegment(context.Background(), uuid.New(), "es", meta))
	assert.Equal(t, "seg5-v2.wav", repo.audioSet["seg-5/es"])
}

func TestRetargetSegmentIDFromSegmentsList(t *testing.T) {
	repo := newFakeSegmentsRepo()
	uc := newTestSegmentsUC(repo, nil)
	repo.translations["seg-9/de"] = &models.SegmentTranslation{SegmentID: "seg-9", LanguageCode: "de"}

	meta := &models.CallbackMetadata{
		Segments: []models.InlineSegment{{SegmentID: "seg-9", AudioFile: "seg9.wav"}},
	}
	require.NoError(t, uc.RetargetSegment(context.Background(), uuid.New(), "de", meta))
	assert.Equal(t, "seg9.wav", repo.audioSet["seg-9/de"])
}

func TestRetargetSegmentMissingFields(t *testing.T) {
	uc := newTestSegmentsUC(newFakeSegmentsRepo(), nil)

	err := uc.RetargetSegment(context.Background(), uuid.New(), "es", &models.CallbackMetadata{})
	assert.Error(t, err)

	err = uc.RetargetSegment(context.Background(), uuid.New(), "es", &models.CallbackMetadata{SegmentID: "seg-1"})
	assert.Error(t, err)
}
