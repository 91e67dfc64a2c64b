package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tahqeeq/outreach/internal/entity"
	"github.com/tahqeeq/outreach/internal/infra/storage"
)

// SessionRepository holds the single user record plus the authenticated
// flag. It is constructed once in main and handed to whoever needs it; there
// is no package-level session state.
type SessionRepository struct {
	store *storage.Store
	mu    sync.Mutex
}

func NewSessionRepository(store *storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// GetUser returns the stored user, or nil when no session exists.
func (r *SessionRepository) GetUser(ctx context.Context) (*entity.User, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("stored user is not valid JSON: %w", err)
	}
	if err := validate.Struct(&user); err != nil {
		return nil, fmt.Errorf("stored user is invalid: %w", err)
	}
	return &user, nil
}

// SetUser stores the user and marks the session authenticated.
func (r *SessionRepository) SetUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := r.store.Put(ctx, storage.KeyUser, string(raw)); err != nil {
		return err
	}
	return r.store.Put(ctx, storage.KeyAuth, "true")
}

func (r *SessionRepository) IsAuthenticated(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyAuth)
	if err != nil {
		return false, err
	}
	return ok && raw == "true", nil
}

// Logout clears both the user record and the authenticated flag.
func (r *SessionRepository) Logout(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, storage.KeyUser); err != nil {
		return err
	}
	return r.store.Delete(ctx, storage.KeyAuth)
}
