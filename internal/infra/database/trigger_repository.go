package database

import (
	"context"
	"sync"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/storage"
)

type TriggerRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewTriggerRepository(store *storage.Store) *TriggerRepository {
	return &TriggerRepository{store: store}
}

func (r *TriggerRepository) GetAll(ctx context.Context) ([]entity.SignalTrigger, error) {
	return readCollection[entity.SignalTrigger](ctx, r.store, storage.KeyTriggers)
}

// SaveAll replaces the stored discoveries with the latest search results,
// matching the original behavior of each discovery run overwriting the last.
func (r *TriggerRepository) SaveAll(ctx context.Context, triggers []entity.SignalTrigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeCollection(ctx, r.store, storage.KeyTriggers, triggers)
}

// FindByIDs returns the stored triggers matching the given ids, in stored
// order. Unknown ids are skipped.
func (r *TriggerRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.SignalTrigger, error) {
	triggers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var out []entity.SignalTrigger
	for _, t := range triggers {
		if wanted[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TriggerRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	triggers, err := readCollection[entity.SignalTrigger](ctx, r.store, storage.KeyTriggers)
	if err != nil {
		return err
	}

	kept := triggers[:0]
	for _, t := range triggers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return writeCollection(ctx, r.store, storage.KeyTriggers, kept)
}
