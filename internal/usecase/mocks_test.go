package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tahqeeq/outreach/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) GetAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) SaveAll(ctx context.Context, leads []entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) Add(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) AddAll(ctx context.Context, leads []entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateByID(ctx context.Context, id string, patch entity.LeadPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTemplateRepository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) GetAll(ctx context.Context) ([]entity.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id string) (*entity.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Template), args.Error(1)
}

func (m *MockTemplateRepository) Add(ctx context.Context, template *entity.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) UpdateByID(ctx context.Context, id string, patch entity.TemplatePatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockTemplateRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTriggerRepository
type MockTriggerRepository struct {
	mock.Mock
}

func (m *MockTriggerRepository) GetAll(ctx context.Context) ([]entity.SignalTrigger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SignalTrigger), args.Error(1)
}

func (m *MockTriggerRepository) SaveAll(ctx context.Context, triggers []entity.SignalTrigger) error {
	args := m.Called(ctx, triggers)
	return args.Error(0)
}

func (m *MockTriggerRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.SignalTrigger, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SignalTrigger), args.Error(1)
}

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetUser(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockSessionRepository) SetUser(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSessionRepository) IsAuthenticated(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockJobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindByID(ctx context.Context, id string) (*entity.GenerationJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GenerationJob), args.Error(1)
}

func (m *MockJobRepository) Save(ctx context.Context, job *entity.GenerationJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

// MockSignalClient
type MockSignalClient struct {
	mock.Mock
}

func (m *MockSignalClient) Search(ctx context.Context, query SignalQuery) ([]entity.SignalTrigger, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SignalTrigger), args.Error(1)
}

// MockJobPublisher
type MockJobPublisher struct {
	mock.Mock
}

func (m *MockJobPublisher) PublishJob(ctx context.Context, job *entity.GenerationJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendDraft(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}
