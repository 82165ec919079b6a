package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，HTTP状态码由Code所在区间推导
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较
// 预定义错误是指针，Wrap之后仍能通过errors.Is(err, ErrXxx)判断
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// HTTPStatus 错误码区间 → HTTP状态码
// 规则：
// - 401xx → 401
// - 403xx → 403
// - 404xx → 404
// - 400xx、409xx（业务冲突、参数错误） → 400
// - 其余 → 500
func (e *AppError) HTTPStatus() int {
	switch e.Code / 100 {
	case 401:
		return http.StatusUnauthorized
	case 403:
		return http.StatusForbidden
	case 404:
		return http.StatusNotFound
	case 400, 409:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WithCause 在预定义错误基础上附加内部原因（不修改原错误）
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized       = 40100 // 未登录
	ErrCodeInvalidToken       = 40101 // Token无效
	ErrCodeTokenExpired       = 40102 // Token过期
	ErrCodeInvalidPassword    = 40103 // 密码错误
	ErrCodeInvalidCredentials = 40104 // 账号或密码错误
	ErrCodeTokenRevoked       = 40105 // Token已注销

	// 资源错误（40400-40499）
	ErrCodeNotFound          = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound      = 40401 // 用户不存在
	ErrCodeBookNotFound      = 40402 // 图书不存在
	ErrCodeAuthorNotFound    = 40403 // 作者不存在
	ErrCodePublisherNotFound = 40404 // 出版社不存在
	ErrCodeInsightNotFound   = 40405 // 书评不存在
	ErrCodeRouteNotFound     = 40406 // 路由不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError     = 40000 // 业务错误(通用)
	ErrCodeUsernameDuplicate = 40001 // 用户名已存在
	ErrCodeEmailDuplicate    = 40003 // 邮箱已存在
	ErrCodeISBNDuplicate     = 40004 // ISBN已存在
	ErrCodeHasDependents     = 40006 // 存在关联数据，禁止删除
	ErrCodeDeleteFailed      = 40007 // 删除失败（外键约束）
	ErrCodeDuplicateEntry    = 40009 // 重复记录(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeValidation    = 40902 // 字段校验失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================
// 对外提示使用英文，和API文档保持一致

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "Internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error")
	ErrRedisError    = New(ErrCodeRedisError, "Cache service error")

	// 认证授权
	ErrUnauthorized       = New(ErrCodeUnauthorized, "Missing authorization header")
	ErrInvalidToken       = New(ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired       = New(ErrCodeTokenExpired, "Token has expired")
	ErrInvalidPassword    = New(ErrCodeInvalidPassword, "Incorrect password")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "Invalid credentials")
	ErrTokenRevoked       = New(ErrCodeTokenRevoked, "Token has been revoked")

	// 资源不存在
	ErrNotFound      = New(ErrCodeNotFound, "Resource not found")
	ErrRouteNotFound = New(ErrCodeRouteNotFound, "Route not found")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "Malformed request body")
	ErrValidation    = New(ErrCodeValidation, "Validation error")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
