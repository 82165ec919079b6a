package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/pagination"
)

// Response 统一响应结构
// 设计说明：
// 1. Success标识请求是否成功，HTTP状态码与之对应（2xx / 4xx / 5xx）
// 2. Code是业务错误码，仅失败时返回，方便客户端细分错误类型
// 3. Errors是字段级校验错误（字段名 → 错误列表）
// 4. Pagination仅列表接口返回
// 5. Data为nil时省略（错误响应、删除成功），空列表仍输出[]
type Response struct {
	Success    bool                `json:"success"`
	Code       int                 `json:"code,omitempty"`
	Message    string              `json:"message,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Pagination *pagination.Meta    `json:"pagination,omitempty"`
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage 带提示信息的成功响应（200）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功（201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, meta pagination.Meta) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       list,
		Pagination: &meta,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	author, err := h.authors.Get(ctx, id)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 记录详细错误到日志（包含内部错误），客户端只看到Message
	if appErr.Err != nil || status >= http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("code", appErr.Code).
			Err(appErr.Err).
			Msg(appErr.Message)
	}

	c.JSON(status, Response{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// ValidationError 字段校验失败（400）
func ValidationError(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Code:    apperrors.ErrCodeValidation,
		Message: apperrors.ErrValidation.Message,
		Errors:  fields,
	})
}
