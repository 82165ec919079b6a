package dto

import (
	appuser "github.com/xiebiao/library/internal/application/user"
)

// RegisterRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=80" example:"reader"`
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// LoginRequest 登录请求
// 两个字段都必填，缺失时统一返回"Email and password are required"
type LoginRequest struct {
	Email    string `json:"email" example:"reader@example.com"`
	Password string `json:"password" example:"secret123"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" example:"secret123"`
	NewPassword string `json:"new_password" example:"secret456"`
}

// UserResponse 用户响应（不包含密码）
type UserResponse = appuser.UserInfo

// LoginResponse 登录响应
type LoginResponse = appuser.LoginResponse

// RefreshResponse 刷新Token响应
type RefreshResponse = appuser.RefreshResponse
