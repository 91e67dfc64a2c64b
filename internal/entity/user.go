package entity

import (
	"strings"

	"github.com/google/uuid"
)

// User is the single account record held in the session store. No password
// is ever persisted; authentication is a separate boolean flag.
type User struct {
	ID    string `json:"id" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// NewUser synthesizes an account. An empty name defaults to the local part
// of the email address.
func NewUser(email, name string) *User {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  name,
	}
}

// APIKeys maps a provider name (e.g. "x", "linkedin", "smtp") to its key.
// Keys are stored as-is; nothing in this system calls the real providers.
type APIKeys map[string]string
