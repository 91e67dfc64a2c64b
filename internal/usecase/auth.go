package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/entity"
)

const minPasswordLen = 6

// AuthUseCase is the simulated authentication flow: a fixed delay stands in
// for a backend round trip and the only credential check is password length.
// No password is ever stored.
type AuthUseCase struct {
	Sessions SessionRepositoryInterface
	Logger   *zap.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

func NewAuthUseCase(sessions SessionRepositoryInterface, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		Sessions: sessions,
		Logger:   logger,
		sleep:    time.Sleep,
	}
}

// Login synthesizes a user from the email address. The display name is the
// local part of the address.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	uc.sleep(800 * time.Millisecond)

	if len(password) < minPasswordLen {
		return nil, ErrInvalidCredentials
	}

	user := entity.NewUser(email, "")
	if err := uc.Sessions.SetUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Logger.Info("login", zap.String("email", email))
	return user, nil
}

func (uc *AuthUseCase) Signup(ctx context.Context, email, password, name string) (*entity.User, error) {
	uc.sleep(800 * time.Millisecond)

	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	user := entity.NewUser(email, name)
	if err := uc.Sessions.SetUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Logger.Info("signup", zap.String("email", email))
	return user, nil
}

// RequestPasswordReset always succeeds; nothing is sent anywhere.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	uc.sleep(1 * time.Second)
	uc.Logger.Info("password reset requested", zap.String("email", email))
	return nil
}

// CurrentUser returns the session user, or ErrNotAuthenticated.
func (uc *AuthUseCase) CurrentUser(ctx context.Context) (*entity.User, error) {
	authed, err := uc.Sessions.IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !authed {
		return nil, ErrNotAuthenticated
	}

	user, err := uc.Sessions.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.Sessions.Logout(ctx)
}
