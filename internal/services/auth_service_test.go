package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket_backend/internal/auth"
	"fleamarket_backend/internal/services/dto"
	"fleamarket_backend/pkg/apperrors"
)

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	codec := auth.NewTokenCodec("test-secret")
	svc := NewAuthService(users, codec, time.Hour, 3600*24*time.Hour)
	return svc, users
}

func registerTestUser(t *testing.T, svc *AuthService) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
		Birthday: "1995-06-15",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_RegisterIssuesTokenPair(t *testing.T) {
	svc, users := newTestAuthService()

	resp := registerTestUser(t, svc)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)

	// Пароль сохраняется только хешем.
	stored, err := users.FindByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("correct-horse-battery", stored.PasswordHash))
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _ := newTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Register(dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "irrelevant-pass",
		Birthday: "1990-01-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCredentials)

	_, err = svc.Register(dto.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "irrelevant-pass",
		Birthday: "1990-01-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCredentials)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService()
	registerTestUser(t, svc)

	resp, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	caller, err := svc.ResolveCaller(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", caller.Username)
}

func TestAuthService_LoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	registerTestUser(t, svc)

	// Неверный пароль и несуществующий пользователь неразличимы снаружи.
	_, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginRequest{Username: "nobody", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService()
	resp := registerTestUser(t, svc)

	_, err := svc.Refresh(resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_ResolveCallerRejectsRefreshToken(t *testing.T) {
	svc, _ := newTestAuthService()
	resp := registerTestUser(t, svc)

	_, err := svc.ResolveCaller(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_RefreshIssuesNewPair(t *testing.T) {
	svc, _ := newTestAuthService()
	resp := registerTestUser(t, svc)

	pair, err := svc.Refresh(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	caller, err := svc.ResolveCaller(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", caller.Username)
}

func TestAuthService_RefreshAfterUserDeleted(t *testing.T) {
	svc, users := newTestAuthService()
	resp := registerTestUser(t, svc)

	stored, err := users.FindByUsername("alice")
	require.NoError(t, err)
	require.NoError(t, users.Delete(stored.ID))

	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_ResolveCallerGarbage(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.ResolveCaller("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_RequireAdmin(t *testing.T) {
	svc, users := newTestAuthService()
	resp := registerTestUser(t, svc)

	_, err := svc.RequireAdmin(resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	stored, err := users.FindByUsername("alice")
	require.NoError(t, err)
	stored.IsAdmin = true
	require.NoError(t, users.Update(stored))

	admin, err := svc.RequireAdmin(resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestAuthService_ExpiredAccessToken(t *testing.T) {
	svc, _ := newTestAuthService()
	registerTestUser(t, svc)

	// Пара, выпущенная в прошлом за пределами TTL.
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	resp, err := svc.Login(dto.LoginRequest{Username: "alice", Password: "correct-horse-battery"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ResolveCaller(resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// Refresh токен с его огромным TTL все еще жив.
	_, err = svc.Refresh(resp.RefreshToken)
	assert.NoError(t, err)
}
