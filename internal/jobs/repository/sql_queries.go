package repository

const (
	createJobQuery = `INSERT INTO jobs (job_id, project_id, input_key, callback_url, status, metadata, history)
					VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING *`
	getJobByIDQuery = `SELECT job_id, project_id, input_key, callback_url, status, result_key, error, metadata, history, created_at, updated_at
					FROM jobs WHERE job_id = $1`
	updateStatusQuery = `UPDATE jobs
					SET status = $2,
					    result_key = COALESCE($3, result_key),
					    error = COALESCE($4, error),
					    metadata = COALESCE($5, metadata),
					    history = history || $6::jsonb,
					    updated_at = now()
					WHERE job_id = $1
					RETURNING *`
	getJobsByProjectQuery = `SELECT job_id, project_id, input_key, callback_url, status, result_key, error, metadata, history, created_at, updated_at
					FROM jobs WHERE project_id = $1 ORDER BY created_at DESC`
)
