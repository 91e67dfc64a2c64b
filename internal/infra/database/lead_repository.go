package database

import (
	"context"
	"sync"
	"time"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/storage"
)

type LeadRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewLeadRepository(store *storage.Store) *LeadRepository {
	return &LeadRepository{store: store}
}

// GetAll returns the leads in insertion order. An empty collection is an
// empty slice, never nil.
func (r *LeadRepository) GetAll(ctx context.Context) ([]entity.Lead, error) {
	return readCollection[entity.Lead](ctx, r.store, storage.KeyLeads)
}

// SaveAll overwrites the whole collection.
func (r *LeadRepository) SaveAll(ctx context.Context, leads []entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeCollection(ctx, r.store, storage.KeyLeads, leads)
}

// Add appends the lead and persists.
func (r *LeadRepository) Add(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	leads, err := readCollection[entity.Lead](ctx, r.store, storage.KeyLeads)
	if err != nil {
		return err
	}
	leads = append(leads, *lead)
	return writeCollection(ctx, r.store, storage.KeyLeads, leads)
}

// AddAll appends several leads in one write.
func (r *LeadRepository) AddAll(ctx context.Context, newLeads []entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	leads, err := readCollection[entity.Lead](ctx, r.store, storage.KeyLeads)
	if err != nil {
		return err
	}
	leads = append(leads, newLeads...)
	return writeCollection(ctx, r.store, storage.KeyLeads, leads)
}

// UpdateByID merges the patch into the first lead with a matching id and
// refreshes LastUpdated. An unknown id is a silent no-op.
func (r *LeadRepository) UpdateByID(ctx context.Context, id string, patch entity.LeadPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	leads, err := readCollection[entity.Lead](ctx, r.store, storage.KeyLeads)
	if err != nil {
		return err
	}

	for i := range leads {
		if leads[i].ID == id {
			patch.Apply(&leads[i])
			leads[i].LastUpdated = time.Now().UTC()
			return writeCollection(ctx, r.store, storage.KeyLeads, leads)
		}
	}
	return nil
}

// DeleteByID removes the lead with the given id. Deleting an absent id
// leaves the collection unchanged.
func (r *LeadRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	leads, err := readCollection[entity.Lead](ctx, r.store, storage.KeyLeads)
	if err != nil {
		return err
	}

	kept := leads[:0]
	for _, l := range leads {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return writeCollection(ctx, r.store, storage.KeyLeads, kept)
}

// Clear deletes every lead. Used by the settings clear-all operation.
func (r *LeadRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeCollection(ctx, r.store, storage.KeyLeads, []entity.Lead{})
}
