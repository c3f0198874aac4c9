package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  *AppError
		want int
	}{
		{"未登录", ErrUnauthenticated, http.StatusUnauthorized},
		{"Token过期", ErrTokenExpired, http.StatusUnauthorized},
		{"无权限", ErrPermissionDenied, http.StatusForbidden},
		{"资源不存在", ErrNotFound, http.StatusNotFound},
		{"参数错误", ErrInvalidParams, http.StatusBadRequest},
		{"用户名重复", ErrUsernameDuplicate, http.StatusBadRequest},
		{"不支持的运算", ErrUnsupportedOperation, http.StatusInternalServerError},
		{"内部错误", ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestAppError_Is(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrPermissionDenied)
	assert.True(t, errors.Is(wrapped, ErrPermissionDenied))
	assert.False(t, errors.Is(wrapped, ErrUnauthenticated), "403与401必须可区分")

	withField := ErrInvalidParams.WithField("rate")
	assert.True(t, errors.Is(withField, ErrInvalidParams))
	assert.Equal(t, []string{"Invalid input."}, withField.Fields["rate"])
	assert.Nil(t, ErrInvalidParams.Fields, "共享的预定义错误不能被修改")
}

func TestGetAppError(t *testing.T) {
	plain := errors.New("connection refused")

	appErr := GetAppError(plain)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.ErrorIs(t, appErr, plain)

	assert.Same(t, ErrNotFound, GetAppError(ErrNotFound))
}
