package repository

const (
	createIssueQuery = `INSERT INTO issues (translation_id, project_id, language_code, issue_type, severity, score, diff, details)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`
	getIssuesByProjectQuery = `SELECT issue_id, translation_id, project_id, language_code, issue_type, severity, score, diff, details, resolved, created_at, updated_at
					FROM issues WHERE project_id = $1 AND ($2 = '' OR language_code = $2) ORDER BY created_at DESC`
	setResolvedQuery = `UPDATE issues SET resolved = $2, updated_at = now() WHERE issue_id = $1`
	listTranslationTextsQuery = `SELECT t.translation_id, t.segment_id, s.source_text, t.target_text
					FROM segment_translations t
					JOIN segments s ON s.segment_id::text = t.segment_id
					WHERE s.project_id = $1 AND t.language_code = $2
					ORDER BY s.segment_index`
	getTranslationTextQuery = `SELECT t.translation_id, t.segment_id, s.source_text, t.target_text
					FROM segment_translations t
					JOIN segments s ON s.segment_id::text = t.segment_id
					WHERE t.segment_id = $1 AND t.language_code = $2`
	deleteByProjectQuery     = `DELETE FROM issues WHERE project_id = $1`
	deleteByTranslationQuery = `DELETE FROM issues WHERE translation_id = $1`
)
