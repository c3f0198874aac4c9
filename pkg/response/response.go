package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// ErrorBody 错误响应结构
// 非字段错误返回 {"detail": "..."}；字段校验错误直接返回 {"field": ["msg"]}
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Success 成功响应，直接返回资源本身（不包信封）
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

// NoContent 204响应，没有响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	view, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误只记录日志，不返回给客户端
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"code", appErr.Code,
			"error", err,
		)
		c.AbortWithStatusJSON(status, ErrorBody{Detail: "A server error occurred."})
		return
	}

	// 记录到gin上下文，请求日志中间件会输出
	_ = c.Error(err)

	if len(appErr.Fields) > 0 {
		c.AbortWithStatusJSON(status, appErr.Fields)
		return
	}
	c.AbortWithStatusJSON(status, ErrorBody{Detail: appErr.Message})
}
