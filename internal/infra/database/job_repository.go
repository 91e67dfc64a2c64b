package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/storage"
)

// JobRepository persists generation jobs as an id-keyed map so the worker
// can report progress and handlers can poll it.
type JobRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewJobRepository(store *storage.Store) *JobRepository {
	return &JobRepository{store: store}
}

func (r *JobRepository) readAll(ctx context.Context) (map[string]entity.GenerationJob, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyJobs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]entity.GenerationJob{}, nil
	}

	var jobs map[string]entity.GenerationJob
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		return nil, fmt.Errorf("stored jobs are not valid JSON: %w", err)
	}
	return jobs, nil
}

// FindByID returns the job, or nil when unknown.
func (r *JobRepository) FindByID(ctx context.Context, id string) (*entity.GenerationJob, error) {
	jobs, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	job, ok := jobs[id]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

// Save upserts the job record.
func (r *JobRepository) Save(ctx context.Context, job *entity.GenerationJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	jobs[job.ID] = *job

	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("encode jobs: %w", err)
	}
	return r.store.Put(ctx, storage.KeyJobs, string(raw))
}
