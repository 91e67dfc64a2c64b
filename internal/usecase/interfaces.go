package usecase

import (
	"context"

	"github.com/tahqeeq/outreach/internal/entity"
)

type LeadRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entity.Lead, error)
	SaveAll(ctx context.Context, leads []entity.Lead) error
	Add(ctx context.Context, lead *entity.Lead) error
	AddAll(ctx context.Context, leads []entity.Lead) error
	UpdateByID(ctx context.Context, id string, patch entity.LeadPatch) error
	DeleteByID(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type TemplateRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entity.Template, error)
	FindByID(ctx context.Context, id string) (*entity.Template, error)
	Add(ctx context.Context, template *entity.Template) error
	UpdateByID(ctx context.Context, id string, patch entity.TemplatePatch) error
	DeleteByID(ctx context.Context, id string) error
}

type TriggerRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entity.SignalTrigger, error)
	SaveAll(ctx context.Context, triggers []entity.SignalTrigger) error
	FindByIDs(ctx context.Context, ids []string) ([]entity.SignalTrigger, error)
}

type SessionRepositoryInterface interface {
	GetUser(ctx context.Context) (*entity.User, error)
	SetUser(ctx context.Context, user *entity.User) error
	IsAuthenticated(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
}

type JobRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.GenerationJob, error)
	Save(ctx context.Context, job *entity.GenerationJob) error
}

// DraftProvider produces a draft and a quality score for one lead. The
// shipped implementation is template substitution; a real model backend can
// replace it without touching the batch flow.
type DraftProvider interface {
	Generate(ctx context.Context, lead *entity.Lead, template *entity.Template, tone entity.Tone) (draft string, score int, err error)
}

// SignalClient searches a social platform for buying signals.
type SignalClient interface {
	Search(ctx context.Context, query SignalQuery) ([]entity.SignalTrigger, error)
}

// JobPublisher hands a generation job to the queue for the worker to run.
type JobPublisher interface {
	PublishJob(ctx context.Context, job *entity.GenerationJob) error
}
