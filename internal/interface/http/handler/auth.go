package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/library/internal/application/user"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// AuthHandler 账号HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
type AuthHandler struct {
	register       *appuser.RegisterUseCase
	login          *appuser.LoginUseCase
	logout         *appuser.LogoutUseCase
	refresh        *appuser.RefreshUseCase
	changePassword *appuser.ChangePasswordUseCase
	profile        *appuser.ProfileUseCase
}

// NewAuthHandler 创建账号处理器
func NewAuthHandler(
	register *appuser.RegisterUseCase,
	login *appuser.LoginUseCase,
	logout *appuser.LogoutUseCase,
	refresh *appuser.RefreshUseCase,
	changePassword *appuser.ChangePasswordUseCase,
	profile *appuser.ProfileUseCase,
) *AuthHandler {
	return &AuthHandler{
		register:       register,
		login:          login,
		logout:         logout,
		refresh:        refresh,
		changePassword: changePassword,
		profile:        profile,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Tags         账号
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=dto.UserResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误/用户名或邮箱已存在"
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}

	info, err := h.register.Execute(c.Request.Context(), appuser.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User registered successfully", info)
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，返回Access Token和Refresh Token
// @Tags         账号
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Email and password are required")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Refresh 刷新Access Token
// @Summary      刷新Token
// @Description  Authorization头携带Refresh Token
// @Tags         账号
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.RefreshResponse}
// @Failure      401 {object} response.Response "Refresh Token无效"
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	result, err := h.refresh.Execute(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ChangePassword 修改密码
// @Summary      修改密码
// @Tags         账号
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ChangePasswordRequest true "旧密码和新密码"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "旧密码错误"
// @Router       /api/v1/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Old and new passwords are required")
		return
	}

	userID := middleware.MustGetUserID(c)
	if err := h.changePassword.Execute(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Password changed successfully", nil)
}

// Logout 登出
// @Summary      登出
// @Description  删除会话，当前Access Token加入黑名单
// @Tags         账号
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	if err := h.logout.Execute(c.Request.Context(), userID, middleware.GetToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, "Successfully logged out", nil)
}

// Me 当前用户信息
// @Summary      当前用户
// @Tags         账号
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	info, err := h.profile.Execute(c.Request.Context(), middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}
