package service_test

import (
	"context"
	"testing"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/config"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (service.AuthService, *stubSiteAuthRepo) {
	repo := &stubSiteAuthRepo{}
	cfg := &config.Config{
		SessionSecret:   "unit-test-secret",
		SessionTTLHours: 1,
	}
	return service.NewAuthService(repo, cfg), repo
}

func TestPasswordSet_OpenSite(t *testing.T) {
	svc, _ := newAuthService()

	set, err := svc.PasswordSet(context.Background())
	require.NoError(t, err)
	assert.False(t, set)
}

func TestLogin_FirstLoginSetsPassword(t *testing.T) {
	svc, repo := newAuthService()
	ctx := context.Background()

	token, wasSet, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)
	assert.True(t, wasSet)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, repo.hash)
	assert.NotContains(t, repo.hash, "corn-maze-2026") // bcrypt, never plaintext

	assert.True(t, svc.VerifySession(ctx, token))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "pumpkin-patch")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestLogin_SecondLoginDoesNotResetPassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, wasSet, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)
	require.True(t, wasSet)

	token, wasSet, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)
	assert.False(t, wasSet)
	assert.True(t, svc.VerifySession(ctx, token))
}

func TestVerifySession_OpenSiteAcceptsAnything(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	assert.True(t, svc.VerifySession(ctx, ""))
	assert.True(t, svc.VerifySession(ctx, "garbage"))
}

func TestVerifySession_RejectsGarbageOnceLocked(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)

	assert.False(t, svc.VerifySession(ctx, ""))
	assert.False(t, svc.VerifySession(ctx, "garbage"))
	assert.False(t, svc.VerifySession(ctx, "eyJhbGciOiJIUzI1NiJ9.e30.bad"))
}

func TestChangePassword_InvalidatesOldSessions(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	oldToken, _, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)
	require.True(t, svc.VerifySession(ctx, oldToken))

	newToken, err := svc.ChangePassword(ctx, "corn-maze-2026", "hayride-harvest")
	require.NoError(t, err)

	assert.False(t, svc.VerifySession(ctx, oldToken))
	assert.True(t, svc.VerifySession(ctx, newToken))

	_, _, err = svc.Login(ctx, "corn-maze-2026")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
	token, _, err := svc.Login(ctx, "hayride-harvest")
	require.NoError(t, err)
	assert.True(t, svc.VerifySession(ctx, token))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "corn-maze-2026")
	require.NoError(t, err)

	_, err = svc.ChangePassword(ctx, "wrong", "hayride-harvest")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestChangePassword_NoPasswordYet(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.ChangePassword(context.Background(), "anything", "hayride-harvest")
	assert.ErrorIs(t, err, service.ErrPasswordNotSet)
}
