package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tahqeeq/outreach/internal/entity"
)

func newBatchFixture() (*BatchGenerateUseCase, *MockLeadRepository, *MockTemplateRepository, *MockJobRepository, *MockJobPublisher) {
	leads := new(MockLeadRepository)
	templates := new(MockTemplateRepository)
	jobs := new(MockJobRepository)
	publisher := new(MockJobPublisher)
	uc := NewBatchGenerateUseCase(leads, templates, jobs, NewTemplateProvider(WithDelay(0, 0)), publisher, zap.NewNop())
	return uc, leads, templates, jobs, publisher
}

func TestStartBatchQueuesJob(t *testing.T) {
	uc, _, templates, jobs, publisher := newBatchFixture()
	templates.On("FindByID", mock.Anything, "tpl-1").Return(&entity.Template{ID: "tpl-1", Name: "n", Body: "b"}, nil)
	jobs.On("Save", mock.Anything, mock.Anything).Return(nil)
	publisher.On("PublishJob", mock.Anything, mock.Anything).Return(nil)

	job, err := uc.Start(context.Background(), StartBatchInput{
		LeadIDs:    []string{"l1", "l2"},
		TemplateID: "tpl-1",
		Phase:      entity.PhaseReminder,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.JobQueued, job.Status)
	assert.Equal(t, 2, job.Total)
	assert.Equal(t, entity.ToneProfessional, job.Tone, "tone defaults to Professional")
	jobs.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartBatchNoLeads(t *testing.T) {
	uc, _, _, _, _ := newBatchFixture()

	_, err := uc.Start(context.Background(), StartBatchInput{TemplateID: "tpl-1"})

	assert.ErrorIs(t, err, ErrNoLeadsSelected)
}

func TestStartBatchUnknownTemplate(t *testing.T) {
	uc, _, templates, _, _ := newBatchFixture()
	templates.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.Start(context.Background(), StartBatchInput{
		LeadIDs:    []string{"l1"},
		TemplateID: "missing",
	})

	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestStartBatchInvalidPhase(t *testing.T) {
	uc, _, _, _, _ := newBatchFixture()

	_, err := uc.Start(context.Background(), StartBatchInput{
		LeadIDs:    []string{"l1"},
		TemplateID: "tpl-1",
		Phase:      entity.Phase("Bogus"),
	})

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PHASE", domainErr.Code)
}

func TestRunBatchGeneratesDrafts(t *testing.T) {
	uc, leads, templates, jobs, _ := newBatchFixture()
	templates.On("FindByID", mock.Anything, "tpl-1").Return(&entity.Template{ID: "tpl-1", Name: "n", Body: "Dear {{contactName}}"}, nil)
	leads.On("GetAll", mock.Anything).Return([]entity.Lead{
		{ID: "l1", Company: "Acme", ContactName: "John", Email: "j@a.com"},
		{ID: "l2", Company: "Gulf", ContactName: "Sara", Email: "s@g.com"},
	}, nil)
	leads.On("UpdateByID", mock.Anything, "l1", mock.MatchedBy(func(p entity.LeadPatch) bool {
		return p.GeneratedDraft != nil && *p.GeneratedDraft == "Dear John" &&
			p.AIScore != nil && *p.AIScore >= 6 && *p.AIScore <= 9 &&
			p.Phase != nil && *p.Phase == entity.PhaseReminder
	})).Return(nil)
	leads.On("UpdateByID", mock.Anything, "l2", mock.Anything).Return(nil)
	jobs.On("Save", mock.Anything, mock.Anything).Return(nil)

	job := entity.NewGenerationJob([]string{"l1", "l2"}, "tpl-1", entity.PhaseReminder, entity.ToneProfessional)
	err := uc.Run(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, entity.JobDone, job.Status)
	assert.Equal(t, 2, job.Generated)
	assert.False(t, job.FinishedAt.IsZero())
	leads.AssertExpectations(t)
}

func TestRunBatchSkipsVanishedLeads(t *testing.T) {
	uc, leads, templates, jobs, _ := newBatchFixture()
	templates.On("FindByID", mock.Anything, "tpl-1").Return(&entity.Template{ID: "tpl-1", Name: "n", Body: "b"}, nil)
	leads.On("GetAll", mock.Anything).Return([]entity.Lead{
		{ID: "l1", Company: "Acme", Email: "j@a.com"},
	}, nil)
	leads.On("UpdateByID", mock.Anything, "l1", mock.Anything).Return(nil)
	jobs.On("Save", mock.Anything, mock.Anything).Return(nil)

	job := entity.NewGenerationJob([]string{"l1", "gone"}, "tpl-1", "", entity.ToneProfessional)
	err := uc.Run(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, entity.JobDone, job.Status)
	assert.Equal(t, 1, job.Generated)
	leads.AssertNotCalled(t, "UpdateByID", mock.Anything, "gone", mock.Anything)
}

func TestRunBatchPersistFailureMarksJobFailed(t *testing.T) {
	uc, leads, templates, jobs, _ := newBatchFixture()
	templates.On("FindByID", mock.Anything, "tpl-1").Return(&entity.Template{ID: "tpl-1", Name: "n", Body: "b"}, nil)
	leads.On("GetAll", mock.Anything).Return([]entity.Lead{
		{ID: "l1", Company: "Acme", Email: "j@a.com"},
	}, nil)
	leads.On("UpdateByID", mock.Anything, "l1", mock.Anything).Return(errors.New("disk full"))
	jobs.On("Save", mock.Anything, mock.Anything).Return(nil)

	job := entity.NewGenerationJob([]string{"l1"}, "tpl-1", "", entity.ToneProfessional)
	err := uc.Run(context.Background(), job)

	require.Error(t, err)
	assert.Equal(t, entity.JobFailed, job.Status)
	assert.Equal(t, "disk full", job.Error)
}

func TestRunBatchLogsFailedStatePersistError(t *testing.T) {
	leads := new(MockLeadRepository)
	templates := new(MockTemplateRepository)
	jobs := new(MockJobRepository)
	core, logs := observer.New(zap.ErrorLevel)
	uc := NewBatchGenerateUseCase(leads, templates, jobs, NewTemplateProvider(WithDelay(0, 0)), new(MockJobPublisher), zap.New(core))

	templates.On("FindByID", mock.Anything, "tpl-1").Return(&entity.Template{ID: "tpl-1", Name: "n", Body: "b"}, nil)
	leads.On("GetAll", mock.Anything).Return([]entity.Lead{
		{ID: "l1", Company: "Acme", Email: "j@a.com"},
	}, nil)
	leads.On("UpdateByID", mock.Anything, "l1", mock.Anything).Return(errors.New("disk full"))
	jobs.On("Save", mock.Anything, mock.MatchedBy(func(j *entity.GenerationJob) bool {
		return j.Status == entity.JobFailed
	})).Return(errors.New("kv down"))
	jobs.On("Save", mock.Anything, mock.Anything).Return(nil)

	job := entity.NewGenerationJob([]string{"l1"}, "tpl-1", "", entity.ToneProfessional)
	err := uc.Run(context.Background(), job)

	require.EqualError(t, err, "disk full", "the original cause wins over the save error")
	assert.Equal(t, entity.JobFailed, job.Status)
	require.Equal(t, 1, logs.FilterMessage("persist failed job state").Len())
}

func TestStatusUnknownJob(t *testing.T) {
	uc, _, _, jobs, _ := newBatchFixture()
	jobs.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.Status(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobProgress(t *testing.T) {
	job := entity.NewGenerationJob([]string{"a", "b", "c", "d"}, "tpl", "", entity.ToneProfessional)

	assert.Equal(t, 0.0, job.Progress())
	job.Generated = 3
	assert.InDelta(t, 75.0, job.Progress(), 0.001)

	empty := entity.NewGenerationJob(nil, "tpl", "", entity.ToneProfessional)
	assert.Equal(t, 0.0, empty.Progress())
}
