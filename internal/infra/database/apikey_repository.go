package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/storage"
)

// APIKeyRepository persists the provider→key map from the settings screen.
type APIKeyRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewAPIKeyRepository(store *storage.Store) *APIKeyRepository {
	return &APIKeyRepository{store: store}
}

func (r *APIKeyRepository) Get(ctx context.Context) (entity.APIKeys, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyAPIKeys)
	if err != nil {
		return nil, err
	}
	if !ok {
		return entity.APIKeys{}, nil
	}

	var keys entity.APIKeys
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("stored api keys are not valid JSON: %w", err)
	}
	return keys, nil
}

// Save overwrites the whole map.
func (r *APIKeyRepository) Save(ctx context.Context, keys entity.APIKeys) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if keys == nil {
		keys = entity.APIKeys{}
	}
	raw, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("encode api keys: %w", err)
	}
	return r.store.Put(ctx, storage.KeyAPIKeys, string(raw))
}
