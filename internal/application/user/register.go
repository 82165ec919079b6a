package user

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/user"

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调多个领域服务
// 2. 当前注册用例比较简单，只调用一个领域服务
// 3. 记录认证指标(auth_attempts_total{action="register"})
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
// 返回：UserInfo（应用层DTO，不是领域实体）
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (info *UserInfo, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RegisterUseCase.Execute")
	defer func() {
		metrics.RecordAuthAttempt("register", err)
		tracing.End(span, err)
	}()

	// 1. 调用领域服务执行注册
	u, err := uc.userService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 领域实体 → 应用层DTO
	// 说明：不直接返回领域实体，领域模型变更不影响API契约
	return NewUserInfo(u), nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// UserInfo 用户公开信息
// 说明：不返回密码字段（安全考虑）
type UserInfo struct {
	ID        uint      `json:"id" example:"1"`
	Username  string    `json:"username" example:"reader"`
	Email     string    `json:"email" example:"reader@example.com"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserInfo 领域实体 → DTO
func NewUserInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
