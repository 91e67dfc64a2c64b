package database

import (
	"context"
	"sync"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/storage"
)

type TemplateRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewTemplateRepository(store *storage.Store) *TemplateRepository {
	return &TemplateRepository{store: store}
}

// readAll returns the stored templates, seeding and persisting the default
// set on the first read of an empty store. Callers must hold r.mu.
func (r *TemplateRepository) readAll(ctx context.Context) ([]entity.Template, error) {
	_, ok, err := r.store.Get(ctx, storage.KeyTemplates)
	if err != nil {
		return nil, err
	}
	if !ok {
		defaults := entity.DefaultTemplates()
		if err := writeCollection(ctx, r.store, storage.KeyTemplates, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	return readCollection[entity.Template](ctx, r.store, storage.KeyTemplates)
}

// GetAll returns the templates. The first read of an empty store seeds and
// persists the default set.
func (r *TemplateRepository) GetAll(ctx context.Context) ([]entity.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll(ctx)
}

// FindByID returns the template with the given id, or nil when absent.
func (r *TemplateRepository) FindByID(ctx context.Context, id string) (*entity.Template, error) {
	templates, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].ID == id {
			return &templates[i], nil
		}
	}
	return nil, nil
}

func (r *TemplateRepository) SaveAll(ctx context.Context, templates []entity.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeCollection(ctx, r.store, storage.KeyTemplates, templates)
}

func (r *TemplateRepository) Add(ctx context.Context, template *entity.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	templates = append(templates, *template)
	return writeCollection(ctx, r.store, storage.KeyTemplates, templates)
}

// UpdateByID merges the patch into the matching template; unknown ids are a
// silent no-op.
func (r *TemplateRepository) UpdateByID(ctx context.Context, id string, patch entity.TemplatePatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	for i := range templates {
		if templates[i].ID == id {
			patch.Apply(&templates[i])
			return writeCollection(ctx, r.store, storage.KeyTemplates, templates)
		}
	}
	return nil
}

func (r *TemplateRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	templates, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	kept := templates[:0]
	for _, t := range templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return writeCollection(ctx, r.store, storage.KeyTemplates, kept)
}
