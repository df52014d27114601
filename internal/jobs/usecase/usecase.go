package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/events"
	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/jobs"
	"github.com/dubwise/dubwise-backend/internal/metrics"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/pipeline"
	"github.com/dubwise/dubwise-backend/internal/progress"
	"github.com/dubwise/dubwise-backend/internal/projects"
	"github.com/dubwise/dubwise-backend/internal/segments"
	"github.com/dubwise/dubwise-backend/pkg/logger"
	"github.com/dubwise/dubwise-backend/pkg/utils"
)

type jobsUC struct {
	cfg          *config.Config
	jobsRepo     jobs.Repository
	redisRepo    jobs.RedisRepository
	projectsRepo projects.Repository
	segmentsUC   segments.UseCase
	issuesUC     issues.UseCase
	progressUC   progress.UseCase
	hub          *events.Hub
	logger       logger.Logger
}

func NewJobsUseCase(
	cfg *config.Config,
	jobsRepo jobs.Repository,
	redisRepo jobs.RedisRepository,
	projectsRepo projects.Repository,
	segmentsUC segments.UseCase,
	issuesUC issues.UseCase,
	progressUC progress.UseCase,
	hub *events.Hub,
	log logger.Logger,
) jobs.UseCase {
	return &jobsUC{
		cfg:          cfg,
		jobsRepo:     jobsRepo,
		redisRepo:    redisRepo,
		projectsRepo: projectsRepo,
		segmentsUC:   segmentsUC,
		issuesUC:     issuesUC,
		progressUC:   progressUC,
		hub:          hub,
		logger:       log,
	}
}

func (u *jobsUC) CreateJob(ctx context.Context, input *models.JobCreateInput) (*models.Job, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("CreateJob - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	projectID, err := uuid.Parse(input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project id: %v", err)
	}
	if _, err = u.projectsRepo.GetProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("project not found: %v", err)
	}

	// The id is generated here so the callback URL can be stored on the row
	// it points back at.
	jobID := uuid.New()
	job := &models.Job{
		JobID:       jobID,
		ProjectID:   projectID,
		InputKey:    input.InputKey,
		Metadata:    input.Metadata,
		Status:      models.JobStatusQueued,
		CallbackURL: fmt.Sprintf("%s/api/v1/jobs/%s/status", u.cfg.Server.CallbackBase, jobID),
		History: models.JobHistory{
			{Status: models.JobStatusQueued, TS: time.Now().UTC(), Message: "job created"},
		},
	}

	job, err = u.jobsRepo.CreateJob(ctx, job)
	if err != nil {
		u.logger.Errorf("CreateJob - CreateJob error: %v", err)
		return nil, err
	}

	msg := &models.DispatchMessage{
		JobID:       job.JobID.String(),
		ProjectID:   job.ProjectID.String(),
		CallbackURL: job.CallbackURL,
	}
	if job.InputKey != nil {
		msg.InputKey = *job.InputKey
	}
	if err = u.redisRepo.EnqueueDispatch(ctx, u.cfg.Redis.JobQueueKey, msg); err != nil {
		u.logger.Errorf("CreateJob - EnqueueDispatch error: %v", err)
		if _, markErr := u.MarkFailed(ctx, job.JobID, "dispatch failed", err.Error()); markErr != nil {
			u.logger.Errorf("CreateJob - MarkFailed error: %v", markErr)
		}
		return nil, fmt.Errorf("failed to queue the job: %v", err)
	}

	return job, nil
}

func (u *jobsUC) GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	job, err := u.jobsRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobsUC) GetProjectJobs(ctx context.Context, projectID uuid.UUID) ([]*models.Job, error) {
	result, err := u.jobsRepo.GetJobsByProject(ctx, projectID)
	if err != nil {
		u.logger.Errorf("GetProjectJobs - GetJobsByProject error: %v", err)
		return nil, fmt.Errorf("failed to fetch jobs: %v", err)
	}
	return result, nil
}

func (u *jobsUC) UpdateStatus(ctx context.Context, jobID uuid.UUID, input *models.JobUpdateInput) (*models.Job, error) {
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("UpdateStatus - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}

	entry := models.HistoryEntry{Status: input.Status, TS: time.Now().UTC()}
	if input.Message != nil {
		entry.Message = *input.Message
	}

	job, err := u.jobsRepo.UpdateStatus(ctx, jobID, input, entry)
	if err != nil {
		return nil, err
	}

	meta, err := models.DecodeCallbackMetadata(input.Metadata)
	if err != nil {
		u.logger.Warnf("UpdateStatus - metadata decode error for job %s: %v", jobID, err)
		meta = nil
	}

	stage := "none"
	if meta != nil && meta.Stage != "" {
		stage = pipeline.Canonical(meta.Stage)
	}
	metrics.CallbacksTotal.WithLabelValues(stage).Inc()

	// The ledger write above is the contract with workers. Everything below
	// is derived state: failures are logged, never surfaced to the caller.
	u.processStage(ctx, job, input, meta)

	return job, nil
}

func (u *jobsUC) MarkFailed(ctx context.Context, jobID uuid.UUID, errMsg, message string) (*models.Job, error) {
	input := &models.JobUpdateInput{
		Status: models.JobStatusFailed,
		Error:  &errMsg,
	}
	if message != "" {
		input.Message = &message
	}
	return u.UpdateStatus(ctx, jobID, input)
}

func (u *jobsUC) processStage(ctx context.Context, job *models.Job, input *models.JobUpdateInput, meta *models.CallbackMetadata) {
	projectID := job.ProjectID

	if meta == nil || meta.Stage == "" {
		u.publishTaskEvent(job, input)
		return
	}

	lang := meta.TargetLanguage()
	interp := pipeline.Interpret(meta.Stage)

	if lang == "" && (interp.LanguageScoped || interp.SegmentScoped) {
		fallback, err := u.projectsRepo.FirstTargetLanguage(ctx, projectID)
		if err != nil {
			u.logger.Errorf("processStage - no target language for project %s stage %s: %v", projectID, interp.Stage, err)
			return
		}
		u.logger.Warnf("stage %s for project %s missing target_lang, falling back to %s", interp.Stage, projectID, fallback)
		lang = fallback
	}

	if !interp.Known {
		u.logger.Warnf("unknown stage %q for project %s, recording without progress", interp.Stage, projectID)
	}

	message := ""
	if input.Message != nil {
		message = *input.Message
	}

	if interp.Triggers.PersistSourceKeys {
		if keys := meta.SourceKeys(); !keys.Empty() {
			if err := u.projectsRepo.SetSourceKeys(ctx, projectID, keys); err != nil {
				u.logger.Errorf("processStage - SetSourceKeys error: %v", err)
			}
		}
	}

	if interp.Triggers.MergeSpeakerVoices {
		if voices := models.BuildSpeakerVoices(meta.Speakers, meta.SpeakerRefs); len(voices) > 0 {
			if err := u.projectsRepo.MergeSpeakerVoices(ctx, projectID, voices); err != nil {
				u.logger.Errorf("processStage - MergeSpeakerVoices error: %v", err)
			}
		}
	}

	if interp.Triggers.RetargetSegment {
		if err := u.segmentsUC.RetargetSegment(ctx, projectID, lang, meta); err != nil {
			u.logger.Errorf("processStage - RetargetSegment error: %v", err)
		}
	}

	if interp.Triggers.SegmentFailed {
		u.logger.Warnf("segment re-synthesis failed for project %s segment %s: %s", projectID, meta.SegmentID, meta.Error)
		u.hub.Publish(models.ProgressEvent{
			EventType:  models.EventTaskFailed,
			ProjectID:  projectID.String(),
			TargetLang: lang,
			Status:     models.TargetProcessing,
			Stage:      interp.Stage,
			StageName:  interp.StageName,
			Message:    meta.Error,
		})
	}

	if interp.Triggers.MaterializeSegments {
		count, err := u.segmentsUC.Materialize(ctx, projectID, lang, meta)
		if err != nil {
			u.logger.Errorf("processStage - Materialize error: %v", err)
		} else if count > 0 {
			if err = u.projectsRepo.SetSegmentsCount(ctx, projectID, count); err != nil {
				u.logger.Errorf("processStage - SetSegmentsCount error: %v", err)
			}
		}
	}

	if interp.Triggers.CreateAsset && input.ResultKey != nil && *input.ResultKey != "" {
		asset := &models.Asset{
			ProjectID:    projectID,
			LanguageCode: lang,
			AssetType:    models.AssetTypeForKey(*input.ResultKey),
			FilePath:     *input.ResultKey,
		}
		if err := u.projectsRepo.CreateAsset(ctx, asset); err != nil {
			u.logger.Errorf("processStage - CreateAsset error: %v", err)
		}
	}

	if meta.Issues != nil && meta.SegmentID != "" {
		if _, err := u.issuesUC.DetectForSegment(ctx, projectID, lang, meta.SegmentID, meta.Issues); err != nil {
			u.logger.Warnf("processStage - DetectForSegment error: %v", err)
		}
	}

	if interp.Known && !interp.SegmentScoped {
		u.applyProgress(ctx, projectID, lang, &interp, message)

		projectStatus := "processing"
		switch interp.Status {
		case models.TargetCompleted:
			projectStatus = "completed"
		case models.TargetFailed:
			projectStatus = "failed"
		}
		if err := u.projectsRepo.SetPipelineState(ctx, projectID, projectStatus, interp.Stage); err != nil {
			u.logger.Errorf("processStage - SetPipelineState error: %v", err)
		}

		if input.Status == models.JobStatusInProgress {
			u.hub.Publish(models.ProgressEvent{
				EventType:  models.EventStageUpdate,
				ProjectID:  projectID.String(),
				TargetLang: lang,
				Status:     interp.Status,
				Progress:   interp.Progress,
				Stage:      interp.Stage,
				StageName:  interp.StageName,
				Message:    message,
			})
		}
	}

	// SweepIssues runs after progress so editors see the stage move before the
	// slower corrector pass lands its findings.
	if interp.Triggers.SweepIssues {
		if _, err := u.issuesUC.SweepProject(ctx, projectID, lang); err != nil {
			u.logger.Warnf("processStage - SweepProject error: %v", err)
		}
	}

	u.publishTaskEvent(job, input)
}

// applyProgress fans a stage out to its targets: language-scoped stages touch
// one target, global stages advance every target of the project.
func (u *jobsUC) applyProgress(ctx context.Context, projectID uuid.UUID, lang string, interp *pipeline.Interpretation, message string) {
	if interp.LanguageScoped {
		if _, err := u.progressUC.Apply(ctx, projectID, lang, interp, message); err != nil {
			u.logger.Errorf("applyProgress - Apply error: %v", err)
		}
		return
	}

	targets, err := u.projectsRepo.GetTargets(ctx, projectID)
	if err != nil {
		u.logger.Errorf("applyProgress - GetTargets error: %v", err)
		return
	}
	for _, target := range targets {
		if _, err = u.progressUC.Apply(ctx, projectID, target.LanguageCode, interp, message); err != nil {
			u.logger.Errorf("applyProgress - Apply error for %s: %v", target.LanguageCode, err)
		}
	}
}

func (u *jobsUC) publishTaskEvent(job *models.Job, input *models.JobUpdateInput) {
	var eventType models.ProgressEventType
	var status models.TargetStatus
	switch input.Status {
	case models.JobStatusDone:
		eventType = models.EventTaskCompleted
		status = models.TargetCompleted
	case models.JobStatusFailed:
		eventType = models.EventTaskFailed
		status = models.TargetFailed
	default:
		return
	}

	event := models.ProgressEvent{
		EventType: eventType,
		ProjectID: job.ProjectID.String(),
		Status:    status,
	}
	if input.Error != nil {
		event.Message = *input.Error
	} else if input.Message != nil {
		event.Message = *input.Message
	}
	u.hub.Publish(event)
}
