package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/testutil"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/jwt"
)

type authFixture struct {
	register *RegisterUseCase
	login    *LoginUseCase
	logout   *LogoutUseCase
	refresh  *RefreshUseCase
	change   *ChangePasswordUseCase
	profile  *ProfileUseCase
	sessions *testutil.MemorySessionStore
	jwt      *jwt.Manager
}

func newAuthFixture(t *testing.T) *authFixture {
	svc := user.NewService(store.NewUserRepository(testutil.NewDB(t)), user.HashCost(bcrypt.MinCost))
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	sessions := testutil.NewMemorySessionStore()
	return &authFixture{
		register: NewRegisterUseCase(svc),
		login:    NewLoginUseCase(svc, manager, sessions),
		logout:   NewLogoutUseCase(manager, sessions),
		refresh:  NewRefreshUseCase(svc, manager),
		change:   NewChangePasswordUseCase(svc),
		profile:  NewProfileUseCase(svc),
		sessions: sessions,
		jwt:      manager,
	}
}

func TestAuthFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	info, err := f.register.Execute(ctx, RegisterRequest{Username: "u1", Email: "u1@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", info.Username)
	assert.True(t, info.IsActive)

	resp, err := f.login.Execute(ctx, LoginRequest{Email: "u1@example.com", Password: "secret1", ClientIP: "127.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.EqualValues(t, 3600, resp.ExpiresIn)
	active, err := f.sessions.HasSession(ctx, info.ID)
	require.NoError(t, err)
	assert.True(t, active, "登录后保存会话")

	claims, err := f.jwt.ParseAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, info.ID, claims.UserID)

	t.Run("刷新", func(t *testing.T) {
		refreshed, err := f.refresh.Execute(ctx, resp.RefreshToken)
		require.NoError(t, err)
		claims, err := f.jwt.ParseAccessToken(refreshed.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1@example.com", claims.Email)

		_, err = f.refresh.Execute(ctx, resp.AccessToken)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidToken), "Access Token不能用于刷新")
	})

	t.Run("当前用户", func(t *testing.T) {
		me, err := f.profile.Execute(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, "u1@example.com", me.Email)

		_, err = f.profile.Execute(ctx, 999)
		assert.True(t, errors.Is(err, user.ErrUserNotFound))
	})

	t.Run("登出后Token进入黑名单", func(t *testing.T) {
		require.NoError(t, f.logout.Execute(ctx, info.ID, resp.AccessToken))
		active, err := f.sessions.HasSession(ctx, info.ID)
		require.NoError(t, err)
		assert.False(t, active)

		revoked, err := f.sessions.IsInBlacklist(ctx, resp.AccessToken)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterRequest{Username: "u1", Email: "u1@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.login.Execute(ctx, LoginRequest{Email: "u1@example.com", Password: "nope"})
	assert.True(t, errors.Is(err, user.ErrInvalidCredentials))
	assert.Equal(t, 401, apperrors.GetAppError(err).HTTPStatus())
}

func TestChangePassword_ThenLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	info, err := f.register.Execute(ctx, RegisterRequest{Username: "u1", Email: "u1@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, f.change.Execute(ctx, info.ID, "secret1", "secret2"))

	_, err = f.login.Execute(ctx, LoginRequest{Email: "u1@example.com", Password: "secret2"})
	assert.NoError(t, err)

	_, err = f.login.Execute(ctx, LoginRequest{Email: "u1@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, user.ErrInvalidCredentials))
}
