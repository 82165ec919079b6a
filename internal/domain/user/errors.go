package user

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 用户领域错误定义
var (
	ErrUserNotFound      = apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "Username already exists")
	ErrEmailDuplicate    = apperrors.New(apperrors.ErrCodeEmailDuplicate, "Email already registered")

	// ErrInvalidCredentials 登录失败(不区分邮箱不存在与密码错误，防止账号枚举)
	ErrInvalidCredentials = apperrors.ErrInvalidCredentials

	// ErrIncorrectPassword 修改密码时旧密码错误
	ErrIncorrectPassword = apperrors.ErrInvalidPassword

	ErrInvalidUsername = apperrors.New(apperrors.ErrCodeInvalidParams, "username must be between 2 and 80 characters")
	ErrInvalidEmail    = apperrors.New(apperrors.ErrCodeInvalidParams, "email is not a valid address")
	ErrWeakPassword    = apperrors.New(apperrors.ErrCodeInvalidParams, "password must be at least 6 characters")
)
