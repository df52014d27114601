package repository

const (
	countByProjectQuery = `SELECT COUNT(segment_id) FROM segments WHERE project_id = $1`
	insertSegmentQuery  = `INSERT INTO segments (project_id, segment_index, speaker_tag, start_time, end_time, source_text)
					VALUES ($1, $2, $3, $4, $5, $6)
					ON CONFLICT (project_id, segment_index) DO UPDATE
					SET speaker_tag = EXCLUDED.speaker_tag,
					    start_time = EXCLUDED.start_time,
					    end_time = EXCLUDED.end_time,
					    source_text = EXCLUDED.source_text`
	indexIDMapQuery = `SELECT segment_index, segment_id FROM segments WHERE project_id = $1`
	upsertTranslationQuery = `INSERT INTO segment_translations (segment_id, language_code, target_text, audio_key)
					VALUES ($1, $2, $3, NULLIF($4, ''))
					ON CONFLICT (segment_id, language_code) DO UPDATE
					SET target_text = EXCLUDED.target_text,
					    audio_key = COALESCE(EXCLUDED.audio_key, segment_translations.audio_key),
					    updated_at = now()`
	setTranslationAudioQuery = `UPDATE segment_translations SET audio_key = $3, updated_at = now()
					WHERE segment_id = $1 AND language_code = $2`
	getSegmentsQuery = `SELECT segment_id, project_id, segment_index, speaker_tag, start_time, end_time, source_text, created_at
					FROM segments WHERE project_id = $1 ORDER BY segment_index`
	getTranslationsQuery = `SELECT t.translation_id, t.segment_id, t.language_code, t.target_text, t.audio_key, t.playback_rate, t.created_at, t.updated_at
					FROM segment_translations t
					JOIN segments s ON s.segment_id::text = t.segment_id
					WHERE s.project_id = $1 AND t.language_code = $2`
	updateSegmentQuery = `UPDATE segments
					SET start_time = COALESCE($2, start_time),
					    end_time = COALESCE($3, end_time),
					    speaker_tag = COALESCE($4, speaker_tag),
					    source_text = COALESCE($5, source_text)
					WHERE segment_id = $1`
	updateTranslationQuery = `UPDATE segment_translations
					SET target_text = COALESCE($3, target_text),
					    playback_rate = COALESCE($4, playback_rate),
					    updated_at = now()
					WHERE segment_id = $1 AND language_code = $2`
	deleteByProjectQuery = `DELETE FROM segments WHERE project_id = $1`
)
