package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/entity"
)

// BatchGenerateUseCase creates generation jobs and, on the worker side, runs
// them lead by lead. Generation is strictly sequential and has no abort path
// once started: a crash mid-job leaves the already-generated drafts
// persisted and the job record at its last reported count.
type BatchGenerateUseCase struct {
	Leads     LeadRepositoryInterface
	Templates TemplateRepositoryInterface
	Jobs      JobRepositoryInterface
	Provider  DraftProvider
	Publisher JobPublisher
	Logger    *zap.Logger
}

func NewBatchGenerateUseCase(
	leads LeadRepositoryInterface,
	templates TemplateRepositoryInterface,
	jobs JobRepositoryInterface,
	provider DraftProvider,
	publisher JobPublisher,
	logger *zap.Logger,
) *BatchGenerateUseCase {
	return &BatchGenerateUseCase{
		Leads:     leads,
		Templates: templates,
		Jobs:      jobs,
		Provider:  provider,
		Publisher: publisher,
		Logger:    logger,
	}
}

type StartBatchInput struct {
	LeadIDs    []string     `json:"leadIds"`
	TemplateID string       `json:"templateId"`
	Phase      entity.Phase `json:"phase"`
	Tone       entity.Tone  `json:"tone"`
}

// Start validates the request, persists a queued job and publishes it.
func (uc *BatchGenerateUseCase) Start(ctx context.Context, input StartBatchInput) (*entity.GenerationJob, error) {
	if len(input.LeadIDs) == 0 {
		return nil, ErrNoLeadsSelected
	}
	if input.Phase != "" && !input.Phase.Valid() {
		return nil, &DomainError{Code: "INVALID_PHASE", Message: "unknown phase: " + string(input.Phase)}
	}
	if input.Tone == "" {
		input.Tone = entity.ToneProfessional
	}
	if !input.Tone.Valid() {
		return nil, &DomainError{Code: "INVALID_TONE", Message: "unknown tone: " + string(input.Tone)}
	}

	template, err := uc.Templates.FindByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	job := entity.NewGenerationJob(input.LeadIDs, input.TemplateID, input.Phase, input.Tone)
	if err := uc.Jobs.Save(ctx, job); err != nil {
		return nil, err
	}
	if err := uc.Publisher.PublishJob(ctx, job); err != nil {
		return nil, err
	}

	uc.Logger.Info("generation job queued",
		zap.String("job_id", job.ID),
		zap.Int("leads", job.Total),
		zap.String("tone", string(job.Tone)))
	return job, nil
}

// Run executes a job: for each selected lead, generate a draft, persist it
// together with the score and the chosen phase, then bump the job counter.
// Leads deleted between queueing and execution are skipped.
func (uc *BatchGenerateUseCase) Run(ctx context.Context, job *entity.GenerationJob) error {
	template, err := uc.Templates.FindByID(ctx, job.TemplateID)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrTemplateNotFound
	}

	leads, err := uc.Leads.GetAll(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]entity.Lead, len(leads))
	for _, l := range leads {
		byID[l.ID] = l
	}

	job.Status = entity.JobRunning
	if err := uc.Jobs.Save(ctx, job); err != nil {
		return err
	}

	for _, id := range job.LeadIDs {
		lead, ok := byID[id]
		if !ok {
			uc.Logger.Warn("lead vanished before generation", zap.String("lead_id", id))
			continue
		}

		draft, score, err := uc.Provider.Generate(ctx, &lead, template, job.Tone)
		if err != nil {
			uc.failJob(ctx, job, err)
			return err
		}

		patch := entity.LeadPatch{GeneratedDraft: &draft, AIScore: &score}
		if job.Phase != "" {
			phase := job.Phase
			patch.Phase = &phase
		}
		if err := uc.Leads.UpdateByID(ctx, id, patch); err != nil {
			uc.failJob(ctx, job, err)
			return err
		}

		job.Generated++
		if err := uc.Jobs.Save(ctx, job); err != nil {
			return err
		}
	}

	job.Status = entity.JobDone
	job.FinishedAt = time.Now().UTC()
	if err := uc.Jobs.Save(ctx, job); err != nil {
		return err
	}

	uc.Logger.Info("generation job finished",
		zap.String("job_id", job.ID),
		zap.Int("generated", job.Generated))
	return nil
}

// failJob records the failure on the job. A failed save here would leave the
// record showing RUNNING forever, so it is logged rather than swallowed.
func (uc *BatchGenerateUseCase) failJob(ctx context.Context, job *entity.GenerationJob, cause error) {
	job.Status = entity.JobFailed
	job.Error = cause.Error()
	job.FinishedAt = time.Now().UTC()
	if err := uc.Jobs.Save(ctx, job); err != nil {
		uc.Logger.Error("persist failed job state",
			zap.String("job_id", job.ID),
			zap.Error(err))
	}
}

// Status returns the persisted job record for polling.
func (uc *BatchGenerateUseCase) Status(ctx context.Context, id string) (*entity.GenerationJob, error) {
	job, err := uc.Jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}
