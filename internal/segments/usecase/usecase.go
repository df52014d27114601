package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/segments"
	"github.com/dubwise/dubwise-backend/internal/storage"
	"github.com/dubwise/dubwise-backend/pkg/logger"
	"github.com/dubwise/dubwise-backend/pkg/utils"
)

type segmentsUC struct {
	cfg          *config.Config
	segmentsRepo segments.Repository
	blobRepo     storage.BlobRepository
	logger       logger.Logger
}

func NewSegmentsUseCase(
	cfg *config.Config,
	segmentsRepo segments.Repository,
	blobRepo storage.BlobRepository,
	log logger.Logger,
) segments.UseCase {
	return &segmentsUC{
		cfg:          cfg,
		segmentsRepo: segmentsRepo,
		blobRepo:     blobRepo,
		logger:       log,
	}
}

// NormalizeInline adapts the legacy inline payload shape. Times are already in
// seconds; prompt_text doubles as source text, and the parallel translations
// list overrides the target text when present.
func NormalizeInline(inline []models.InlineSegment, translations []string) []models.SegmentRecord {
	records := make([]models.SegmentRecord, 0, len(inline))
	for i, seg := range inline {
		index := i
		if seg.SegIdx != nil {
			index = *seg.SegIdx
		}
		record := models.SegmentRecord{
			Index:      index,
			SpeakerTag: seg.Speaker,
			Start:      seg.Start,
			End:        seg.End,
			SourceText: seg.PromptText,
			TargetText: seg.PromptText,
			AudioKey:   seg.AudioFile,
		}
		if index < len(translations) && translations[index] != "" {
			record.TargetText = translations[index]
		}
		records = append(records, record)
	}
	return records
}

// NormalizeTranscript adapts the blob-stored transcript shape: millisecond
// times are scaled to seconds and the per-segment speaker index resolves
// against the document's speakers table.
func NormalizeTranscript(doc *models.TranscriptDocument, translations []string) []models.SegmentRecord {
	scale := 1.0
	if doc.Unit == "ms" {
		scale = 0.001
	}
	records := make([]models.SegmentRecord, 0, len(doc.Segments))
	for i, seg := range doc.Segments {
		speaker := fmt.Sprintf("SPEAKER_%02d", seg.SpeakerIdx)
		if seg.SpeakerIdx >= 0 && seg.SpeakerIdx < len(doc.Speakers) {
			speaker = doc.Speakers[seg.SpeakerIdx]
		}
		record := models.SegmentRecord{
			Index:      i,
			SpeakerTag: speaker,
			Start:      seg.Start * scale,
			End:        seg.End * scale,
			SourceText: seg.Text,
			TargetText: seg.Text,
		}
		if i < len(translations) && translations[i] != "" {
			record.TargetText = translations[i]
		}
		records = append(records, record)
	}
	return records
}

func (s *segmentsUC) normalize(ctx context.Context, meta *models.CallbackMetadata) ([]models.SegmentRecord, error) {
	if meta.MetadataKey != "" {
		doc := &models.TranscriptDocument{}
		if err := s.blobRepo.FetchDocument(ctx, s.cfg.S3.MediaBucket, meta.MetadataKey, doc); err != nil {
			return nil, fmt.Errorf("failed to fetch transcript %s: %w", meta.MetadataKey, err)
		}
		return NormalizeTranscript(doc, meta.Translations), nil
	}
	if len(meta.Segments) > 0 {
		return NormalizeInline(meta.Segments, meta.Translations), nil
	}
	return nil, nil
}

func (s *segmentsUC) Materialize(ctx context.Context, projectID uuid.UUID, languageCode string, meta *models.CallbackMetadata) (int, error) {
	records, err := s.normalize(ctx, meta)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		count, err := s.segmentsRepo.CountByProject(ctx, projectID)
		if err != nil {
			return 0, err
		}
		return count, nil
	}

	count, err := s.segmentsRepo.CountByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	// Base segments are created once, by whichever language finishes first.
	// Later languages only attach translations.
	if count == 0 {
		if err = s.segmentsRepo.InsertSegments(ctx, projectID, records); err != nil {
			return 0, err
		}
		s.logger.Infof("materialized %d segments for project %s", len(records), projectID)
	}

	ids, err := s.segmentsRepo.IndexIDMap(ctx, projectID)
	if err != nil {
		return 0, err
	}

	for _, record := range records {
		// Copy so &record.AudioKey below is per-iteration even when the
		// module is built with pre-1.22 loop variable semantics.
		record := record
		segmentID, ok := ids[record.Index]
		if !ok {
			s.logger.Warnf("no segment at index %d for project %s, skipping translation", record.Index, projectID)
			continue
		}
		translation := &models.SegmentTranslation{
			SegmentID:    segmentID,
			LanguageCode: languageCode,
			TargetText:   record.TargetText,
		}
		if record.AudioKey != "" {
			translation.AudioKey = &record.AudioKey
		}
		if err = s.segmentsRepo.UpsertTranslation(ctx, translation); err != nil {
			return 0, err
		}
	}

	return len(ids), nil
}

func (s *segmentsUC) RetargetSegment(ctx context.Context, projectID uuid.UUID, languageCode string, meta *models.CallbackMetadata) error {
	segmentID := meta.SegmentID
	audioKey := ""
	if len(meta.Segments) > 0 {
		if segmentID == "" {
			segmentID = meta.Segments[0].SegmentID
		}
		audioKey = meta.Segments[0].AudioFile
	}
	if segmentID == "" {
		return fmt.Errorf("segment id missing from metadata")
	}
	if audioKey == "" {
		return fmt.Errorf("audio key missing from metadata for segment %s", segmentID)
	}
	if err := s.segmentsRepo.SetTranslationAudio(ctx, segmentID, languageCode, audioKey); err != nil {
		s.logger.Errorf("RetargetSegment - SetTranslationAudio error: %v", err)
		return err
	}
	return nil
}

func (s *segmentsUC) GetSegments(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.SegmentWithTranslations, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("invalid project id: cannot be empty")
	}
	if languageCode == "" {
		return nil, fmt.Errorf("invalid language code: cannot be empty")
	}
	result, err := s.segmentsRepo.GetSegmentsWithTranslations(ctx, projectID, languageCode)
	if err != nil {
		s.logger.Errorf("GetSegments - failed to fetch segments: %v", err)
		return nil, fmt.Errorf("failed to fetch segments: %v", err)
	}
	return result, nil
}

func (s *segmentsUC) BulkUpdateSegments(ctx context.Context, projectID uuid.UUID, languageCode string, input *models.SegmentsBulkUpdateInput) (*models.SegmentsBulkUpdateResult, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		s.logger.Errorf("BulkUpdateSegments - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}

	updated := 0
	for i := range input.Segments {
		edit := &input.Segments[i]
		segUpdated, err := s.segmentsRepo.UpdateSegment(ctx, edit.ID, edit)
		if err != nil {
			return nil, err
		}
		trUpdated := false
		if edit.TargetText != nil || edit.PlaybackRate != nil {
			if trUpdated, err = s.segmentsRepo.UpdateTranslation(ctx, edit.ID, languageCode, edit); err != nil {
				return nil, err
			}
		}
		if segUpdated || trUpdated {
			updated++
		}
	}

	return &models.SegmentsBulkUpdateResult{
		Success:      true,
		Message:      fmt.Sprintf("updated %d segments", updated),
		UpdatedCount: updated,
	}, nil
}
