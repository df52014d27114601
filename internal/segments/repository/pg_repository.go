package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/segments"
)

type segmentsRepo struct {
	db *sqlx.DB
}

func NewSegmentsRepo(db *sqlx.DB) segments.Repository {
	return &segmentsRepo{
		db: db,
	}
}

func (s *segmentsRepo) CountByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, countByProjectQuery, projectID); err != nil {
		return 0, fmt.Errorf("failed to count segments: %w", err)
	}
	return count, nil
}

func (s *segmentsRepo) InsertSegments(ctx context.Context, projectID uuid.UUID, records []models.SegmentRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		if _, err = tx.ExecContext(
			ctx,
			insertSegmentQuery,
			projectID,
			record.Index,
			record.SpeakerTag,
			record.Start,
			record.End,
			record.SourceText,
		); err != nil {
			return fmt.Errorf("failed to insert segment %d: %w", record.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit segments: %w", err)
	}
	return nil
}

func (s *segmentsRepo) IndexIDMap(ctx context.Context, projectID uuid.UUID) (map[int]string, error) {
	rows, err := s.db.QueryxContext(ctx, indexIDMapQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get segment ids: %w", err)
	}
	defer rows.Close()

	result := make(map[int]string)
	for rows.Next() {
		var (
			index     int
			segmentID uuid.UUID
		)
		if err = rows.Scan(&index, &segmentID); err != nil {
			return nil, fmt.Errorf("failed to scan segment id: %w", err)
		}
		result[index] = segmentID.String()
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan segment ids: %w", err)
	}
	return result, nil
}

func (s *segmentsRepo) UpsertTranslation(ctx context.Context, translation *models.SegmentTranslation) error {
	audioKey := ""
	if translation.AudioKey != nil {
		audioKey = *translation.AudioKey
	}
	if _, err := s.db.ExecContext(
		ctx,
		upsertTranslationQuery,
		translation.SegmentID,
		translation.LanguageCode,
		translation.TargetText,
		audioKey,
	); err != nil {
		return fmt.Errorf("failed to upsert translation: %w", err)
	}
	return nil
}

func (s *segmentsRepo) SetTranslationAudio(ctx context.Context, segmentID, languageCode, audioKey string) error {
	res, err := s.db.ExecContext(ctx, setTranslationAudioQuery, segmentID, languageCode, audioKey)
	if err != nil {
		return fmt.Errorf("failed to set translation audio: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return fmt.Errorf("no translation found for segment %s (%s)", segmentID, languageCode)
	}
	return nil
}

func (s *segmentsRepo) GetSegmentsWithTranslations(ctx context.Context, projectID uuid.UUID, languageCode string) ([]*models.SegmentWithTranslations, error) {
	rows, err := s.db.QueryxContext(ctx, getSegmentsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get segments: %w", err)
	}
	defer rows.Close()

	var result = make([]*models.SegmentWithTranslations, 0)
	byID := make(map[string]*models.SegmentWithTranslations)
	for rows.Next() {
		var segment models.Segment
		if err = rows.StructScan(&segment); err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		item := &models.SegmentWithTranslations{
			Segment:      segment,
			Translations: make([]*models.SegmentTranslation, 0, 1),
		}
		result = append(result, item)
		byID[segment.SegmentID.String()] = item
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan segments: %w", err)
	}

	trRows, err := s.db.QueryxContext(ctx, getTranslationsQuery, projectID, languageCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get translations: %w", err)
	}
	defer trRows.Close()
	for trRows.Next() {
		var translation models.SegmentTranslation
		if err = trRows.StructScan(&translation); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		if item, ok := byID[translation.SegmentID]; ok {
			item.Translations = append(item.Translations, &translation)
		}
	}
	if err = trRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan translations: %w", err)
	}
	return result, nil
}

func (s *segmentsRepo) UpdateSegment(ctx context.Context, segmentID string, edit *models.SegmentEdit) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		updateSegmentQuery,
		segmentID,
		edit.Start,
		edit.End,
		edit.SpeakerTag,
		edit.SourceText,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update segment: %w", err)
	}
	count, _ := res.RowsAffected()
	return count > 0, nil
}

func (s *segmentsRepo) UpdateTranslation(ctx context.Context, segmentID, languageCode string, edit *models.SegmentEdit) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		updateTranslationQuery,
		segmentID,
		languageCode,
		edit.TargetText,
		edit.PlaybackRate,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update translation: %w", err)
	}
	count, _ := res.RowsAffected()
	return count > 0, nil
}

func (s *segmentsRepo) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, deleteByProjectQuery, projectID); err != nil {
		return fmt.Errorf("failed to delete segments: %w", err)
	}
	return nil
}
