package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，HTTPStatus由Code推导
// 2. Message是返回给客户端的提示信息（detail）
// 3. Err是内部错误，仅记录到日志，不返回给客户端
// 4. Fields用于字段级校验错误（如 {"rate": ["..."]}）
type AppError struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
	Err     error               `json:"-"`
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

// Is 按错误码比较，预定义错误经Wrap/WithField复制后仍能被errors.Is识别
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// HTTPStatus 返回错误码对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	return StatusOf(e.Code)
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

// Validation 创建字段级校验错误
func Validation(fields map[string][]string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParams,
		Message: "Invalid input.",
		Fields:  fields,
	}
}

// WithField 复制错误并附加字段信息（原错误是共享的包级变量，不能直接修改）
func (e *AppError) WithField(field string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     e.Err,
		Fields:  map[string][]string{field: {e.Message}},
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、权限、资源不存在）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal             = 50000 // 内部错误
	ErrCodeDatabaseError        = 50001 // 数据库错误
	ErrCodeRedisError           = 50002 // Redis错误
	ErrCodeUnsupportedOperation = 50003 // 不支持的运算

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误

	// 权限错误（40300-40399）
	ErrCodeForbidden = 40300 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound     = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound = 40401 // 用户不存在
	ErrCodeBookNotFound = 40402 // 图书不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError     = 40000 // 业务错误(通用)
	ErrCodeUsernameDuplicate = 40003 // 用户名已存在
	ErrCodeWeakPassword      = 40005 // 密码强度不足
	ErrCodeDuplicateEntry    = 40009 // 重复记录(通用)

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// StatusOf 错误码 → HTTP状态码
func StatusOf(code int) int {
	switch {
	case code >= 40100 && code < 40200:
		return http.StatusUnauthorized
	case code >= 40300 && code < 40400:
		return http.StatusForbidden
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40000 && code < 50000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal             = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError        = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError           = New(ErrCodeRedisError, "缓存服务错误")
	ErrUnsupportedOperation = New(ErrCodeUnsupportedOperation, "不支持的运算符")

	// 认证授权
	ErrUnauthenticated = New(ErrCodeUnauthorized, "Authentication credentials were not provided.")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "Given token not valid for any token type.")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token is invalid or expired.")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "No active account found with the given credentials.")

	// 权限
	ErrPermissionDenied = New(ErrCodeForbidden, "You do not have permission to perform this action.")

	// 资源不存在
	ErrNotFound     = New(ErrCodeNotFound, "Not found.")
	ErrUserNotFound = New(ErrCodeUserNotFound, "User not found.")

	// 业务规则
	ErrUsernameDuplicate = New(ErrCodeUsernameDuplicate, "A user with that username already exists.").WithField("username")
	ErrWeakPassword      = New(ErrCodeWeakPassword, "Password must be 8-128 characters and contain both letters and digits.").WithField("password")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid input.")
	ErrBindError     = New(ErrCodeBindError, "JSON parse error.")
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
	return Wrap(err, "系统内部错误")
}
