package repository

const (
	createProjectQuery = `INSERT INTO projects (owner_id, title, status, speaker_voices)
					VALUES ($1, $2, $3, '{}'::jsonb) RETURNING *`
	getProjectByIDQuery = `SELECT project_id, owner_id, title, status, video_key, audio_key, vocals_key, background_key,
					speaker_voices, last_stage, segments_count, created_at, updated_at
					FROM projects WHERE project_id = $1`
	getProjectsByOwnerQuery = `SELECT project_id, owner_id, title, status, video_key, audio_key, vocals_key, background_key,
					speaker_voices, last_stage, segments_count, created_at, updated_at
					FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`
	createTargetQuery = `INSERT INTO project_targets (project_id, language_code, status, progress)
					VALUES ($1, $2, 'pending', 0)
					ON CONFLICT (project_id, language_code) DO NOTHING
					RETURNING project_id, language_code, status, progress, created_at, updated_at`
	getTargetsQuery = `SELECT project_id, language_code, status, progress, created_at, updated_at
					FROM project_targets WHERE project_id = $1 ORDER BY created_at`
	firstTargetLanguageQuery = `SELECT language_code FROM project_targets
					WHERE project_id = $1 ORDER BY created_at LIMIT 1`
	setVideoKeyQuery = `UPDATE projects SET video_key = $2, updated_at = now() WHERE project_id = $1`
	setSourceKeysQuery = `UPDATE projects
					SET audio_key = COALESCE($2, audio_key),
					    vocals_key = COALESCE($3, vocals_key),
					    background_key = COALESCE($4, background_key),
					    updated_at = now()
					WHERE project_id = $1`
	mergeSpeakerVoicesQuery = `UPDATE projects
					SET speaker_voices = COALESCE(speaker_voices, '{}'::jsonb) || $2::jsonb,
					    updated_at = now()
					WHERE project_id = $1`
	setPipelineStateQuery = `UPDATE projects SET status = $2, last_stage = $3, updated_at = now()
					WHERE project_id = $1`
	setSegmentsCountQuery = `UPDATE projects SET segments_count = $2, updated_at = now() WHERE project_id = $1`
	createAssetQuery      = `INSERT INTO assets (project_id, language_code, asset_type, file_path)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (project_id, language_code, asset_type) DO NOTHING`
	getAssetsQuery = `SELECT asset_id, project_id, language_code, asset_type, file_path, created_at
					FROM assets WHERE project_id = $1 ORDER BY created_at`
	deleteProjectQuery = `DELETE FROM projects WHERE project_id = $1`
)
