package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 30*24*time.Hour)

	pair, err := m.GenerateToken(7, "u1", "u1@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 3600, pair.ExpiresIn)

	t.Run("Access Token", func(t *testing.T) {
		claims, err := m.ParseAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "u1", claims.Username)
		assert.Equal(t, "u1@example.com", claims.Email)
		assert.Equal(t, AccessToken, claims.TokenType)
	})

	t.Run("Refresh Token不能当作Access Token", func(t *testing.T) {
		_, err := m.ParseAccessToken(pair.RefreshToken)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))

		claims, err := m.ParseRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
	})

	t.Run("Access Token不能用于刷新", func(t *testing.T) {
		_, err := m.ParseRefreshToken(pair.AccessToken)
		assert.Error(t, err)
	})
}

func TestParseToken_Invalid(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	t.Run("签名不匹配", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour, time.Hour)
		pair, err := other.GenerateToken(1, "u", "u@example.com")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
	})

	t.Run("已过期", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, time.Hour)
		pair, err := expired.GenerateToken(1, "u", "u@example.com")
		require.NoError(t, err)

		_, err = m.ParseAccessToken(pair.AccessToken)
		assert.True(t, errors.Is(err, apperrors.ErrTokenExpired))
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := m.ParseToken("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestGenerateAccessToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	token, err := m.GenerateAccessToken(3, "reader", "reader@example.com")
	require.NoError(t, err)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "reader", claims.Username)
	assert.Equal(t, time.Hour, m.AccessTokenTTL())
}
