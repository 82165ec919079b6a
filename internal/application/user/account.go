package user

import (
	"context"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/pkg/jwt"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// RefreshUseCase 用Refresh Token换取新的Access Token
type RefreshUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
}

// NewRefreshUseCase 创建刷新用例
func NewRefreshUseCase(userService user.Service, jwtManager *jwt.Manager) *RefreshUseCase {
	return &RefreshUseCase{userService: userService, jwtManager: jwtManager}
}

// Execute 执行刷新
// Refresh Token只携带UserID，用户名和邮箱重新从数据库读取
func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (resp *RefreshResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RefreshUseCase.Execute")
	defer func() {
		metrics.RecordAuthAttempt("refresh", err)
		tracing.End(span, err)
	}()

	claims, err := uc.jwtManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	u, err := uc.userService.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.jwtManager.GenerateAccessToken(u.ID, u.Username, u.Email)
	if err != nil {
		return nil, err
	}

	return &RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(uc.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

// RefreshResponse 刷新响应
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"3600"`
}

// ChangePasswordUseCase 修改密码用例
type ChangePasswordUseCase struct {
	userService user.Service
}

// NewChangePasswordUseCase 创建修改密码用例
func NewChangePasswordUseCase(userService user.Service) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userService: userService}
}

// Execute 执行修改密码
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID uint, oldPassword, newPassword string) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ChangePasswordUseCase.Execute")
	defer func() {
		metrics.RecordAuthAttempt("change_password", err)
		tracing.End(span, err)
	}()

	return uc.userService.ChangePassword(ctx, userID, oldPassword, newPassword)
}

// ProfileUseCase 当前用户信息
type ProfileUseCase struct {
	userService user.Service
}

// NewProfileUseCase 创建用户信息用例
func NewProfileUseCase(userService user.Service) *ProfileUseCase {
	return &ProfileUseCase{userService: userService}
}

// Execute 查询用户公开信息
func (uc *ProfileUseCase) Execute(ctx context.Context, userID uint) (info *UserInfo, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ProfileUseCase.Execute")
	defer func() { tracing.End(span, err) }()

	u, err := uc.userService.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewUserInfo(u), nil
}
