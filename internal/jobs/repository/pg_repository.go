package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dubwise/dubwise-backend/internal/jobs"
	"github.com/dubwise/dubwise-backend/internal/models"
)

type jobsRepo struct {
	db *sqlx.DB
}

func NewJobsRepo(db *sqlx.DB) jobs.Repository {
	return &jobsRepo{
		db: db,
	}
}

func (j *jobsRepo) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	created := &models.Job{}
	if err := j.db.QueryRowxContext(
		ctx,
		createJobQuery,
		job.JobID,
		job.ProjectID,
		job.InputKey,
		job.CallbackURL,
		models.JobStatusQueued,
		job.Metadata,
		job.History,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (j *jobsRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	job := &models.Job{}
	if err := j.db.QueryRowxContext(ctx, getJobByIDQuery, jobID).StructScan(job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}
	return job, nil
}

func (j *jobsRepo) UpdateStatus(ctx context.Context, jobID uuid.UUID, input *models.JobUpdateInput, entry models.HistoryEntry) (*models.Job, error) {
	appended, err := json.Marshal(models.JobHistory{entry})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history entry: %w", err)
	}

	job := &models.Job{}
	if err = j.db.QueryRowxContext(
		ctx,
		updateStatusQuery,
		jobID,
		input.Status,
		input.ResultKey,
		input.Error,
		input.Metadata,
		string(appended),
	).StructScan(job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	return job, nil
}

func (j *jobsRepo) GetJobsByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Job, error) {
	rows, err := j.db.QueryxContext(ctx, getJobsByProjectQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs by project: %w", err)
	}
	defer rows.Close()
	var result = make([]*models.Job, 0)
	for rows.Next() {
		var job models.Job
		if err = rows.StructScan(&job); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		result = append(result, &job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return result, nil
}
