package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/entity"
)

func newTestAuthUseCase(sessions SessionRepositoryInterface) *AuthUseCase {
	uc := NewAuthUseCase(sessions, zap.NewNop())
	uc.sleep = func(time.Duration) {}
	return uc
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("SetUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "sara@gulf.com" && u.Name == "sara"
	})).Return(nil)

	uc := newTestAuthUseCase(sessions)
	user, err := uc.Login(context.Background(), "sara@gulf.com", "secret-pass")

	require.NoError(t, err)
	assert.Equal(t, "sara", user.Name)
	sessions.AssertExpectations(t)
}

func TestLoginShortPassword(t *testing.T) {
	sessions := new(MockSessionRepository)

	uc := newTestAuthUseCase(sessions)
	_, err := uc.Login(context.Background(), "sara@gulf.com", "12345")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	sessions.AssertNotCalled(t, "SetUser", mock.Anything, mock.Anything)
}

func TestSignupKeepsProvidedName(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("SetUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Sara Al-Marri"
	})).Return(nil)

	uc := newTestAuthUseCase(sessions)
	user, err := uc.Signup(context.Background(), "sara@gulf.com", "secret-pass", "Sara Al-Marri")

	require.NoError(t, err)
	assert.Equal(t, "Sara Al-Marri", user.Name)
}

func TestSignupShortPassword(t *testing.T) {
	uc := newTestAuthUseCase(new(MockSessionRepository))

	_, err := uc.Signup(context.Background(), "sara@gulf.com", "12345", "Sara")

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRequestPasswordResetAlwaysSucceeds(t *testing.T) {
	uc := newTestAuthUseCase(new(MockSessionRepository))

	assert.NoError(t, uc.RequestPasswordReset(context.Background(), "anyone@anywhere.com"))
}

func TestCurrentUserNotAuthenticated(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("IsAuthenticated", mock.Anything).Return(false, nil)

	uc := newTestAuthUseCase(sessions)
	_, err := uc.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestCurrentUserAuthenticated(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("IsAuthenticated", mock.Anything).Return(true, nil)
	sessions.On("GetUser", mock.Anything).Return(&entity.User{ID: "u1", Email: "sara@gulf.com", Name: "sara"}, nil)

	uc := newTestAuthUseCase(sessions)
	user, err := uc.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sara@gulf.com", user.Email)
}

func TestLogout(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("Logout", mock.Anything).Return(nil)

	uc := newTestAuthUseCase(sessions)

	assert.NoError(t, uc.Logout(context.Background()))
	sessions.AssertExpectations(t)
}
