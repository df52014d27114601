package repository

const (
	getTargetQuery = `SELECT project_id, language_code, status, progress, created_at, updated_at
					FROM project_targets WHERE project_id = $1 AND language_code = $2`
	// Completed targets are immovable; failure overwrites progress, any other
	// status only raises it.
	applyTargetUpdateQuery = `UPDATE project_targets
					SET progress = CASE WHEN $4 = 'failed' THEN $3 ELSE GREATEST(progress, $3) END,
					    status = $4,
					    updated_at = now()
					WHERE project_id = $1 AND language_code = $2 AND status <> 'completed'`
	getTargetsQuery = `SELECT project_id, language_code, status, progress, created_at, updated_at
					FROM project_targets WHERE project_id = $1 ORDER BY created_at`
	getProjectTitleQuery = `SELECT title FROM projects WHERE project_id = $1`
)
