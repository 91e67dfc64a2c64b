// Package database layers typed repositories over the key-value store. Each
// collection is one JSON array (or object) read and rewritten wholesale;
// a per-repository mutex keeps read-modify-write cycles from interleaving
// within the process.
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tahqeeq/outreach/internal/infra/storage"
)

var validate = validator.New()

// readCollection decodes the stored JSON array under key. An absent key
// yields an empty slice. Malformed JSON or records failing validation are
// reported as errors rather than letting a decode panic reach a caller.
func readCollection[T any](ctx context.Context, store *storage.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("stored %s is not valid JSON: %w", key, err)
	}

	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, fmt.Errorf("stored %s record %d is invalid: %w", key, i, err)
		}
	}
	return items, nil
}

// writeCollection overwrites the stored array under key.
func writeCollection[T any](ctx context.Context, store *storage.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Put(ctx, key, string(raw))
}
