package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/response"
)

// Context键
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextEmail    = "email"
	ContextToken    = "token"
)

// SessionChecker Token黑名单与会话查询（Redis实现见infrastructure/persistence/redis）
type SessionChecker interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
	HasSession(ctx context.Context, userID uint) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Token
// 2. 检查Token黑名单（已登出的Token立即失效）
// 3. 校验签名、过期时间和Token类型
// 4. 将用户信息注入Context
// Refresh Token额外要求会话存在，登出后无法再换取Access Token
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	sessions   SessionChecker
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessions SessionChecker) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// RequireAuth 要求Access Token
// 使用方式：
//
//	authorized := r.Group("/api/v1/insights")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		if !m.notRevoked(c, tokenString) {
			return
		}

		claims, err := m.jwtManager.ParseAccessToken(tokenString)
		if err != nil {
			abort(c, err) // ErrTokenExpired、ErrInvalidToken
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// RequireRefresh 要求Refresh Token（只用于/auth/refresh）
func (m *AuthMiddleware) RequireRefresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := m.jwtManager.ParseRefreshToken(tokenString)
		if err != nil {
			abort(c, err)
			return
		}

		if !m.notRevoked(c, tokenString) {
			return
		}
		active, err := m.sessions.HasSession(c.Request.Context(), claims.UserID)
		if err != nil {
			abort(c, err)
			return
		}
		if !active {
			abort(c, apperrors.ErrTokenRevoked)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

// notRevoked Token不在黑名单中，否则终止请求
func (m *AuthMiddleware) notRevoked(c *gin.Context, tokenString string) bool {
	revoked, err := m.sessions.IsInBlacklist(c.Request.Context(), tokenString)
	if err != nil {
		abort(c, err)
		return false
	}
	if revoked {
		abort(c, apperrors.ErrTokenRevoked)
		return false
	}
	return true
}

// bearerToken 解析Authorization: Bearer <token>，失败时已终止请求
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abort(c, apperrors.ErrUnauthorized)
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		abort(c, apperrors.ErrInvalidToken)
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// GetUserID 从Context获取当前登录用户ID，未登录返回0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ContextUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetToken 当前请求携带的Token（登出时加入黑名单）
func GetToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}

// MustGetUserID 从Context获取用户ID（如果不存在则panic）
// 说明：用于已经通过RequireAuth中间件的Handler
func MustGetUserID(c *gin.Context) uint {
	userID := GetUserID(c)
	if userID == 0 {
		panic("user_id not found in context")
	}
	return userID
}
