package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *AppError
		want int
	}{
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"账号密码错误", ErrInvalidCredentials, http.StatusUnauthorized},
		{"资源不存在", New(ErrCodeAuthorNotFound, "Author not found"), http.StatusNotFound},
		{"业务冲突", New(ErrCodeISBNDuplicate, "ISBN already exists"), http.StatusBadRequest},
		{"参数错误", ErrValidation, http.StatusBadRequest},
		{"系统错误", Wrap(errors.New("boom"), "failed"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

func TestAppError_Is(t *testing.T) {
	notFound := New(ErrCodeBookNotFound, "Book not found")

	t.Run("附加原因后仍可识别", func(t *testing.T) {
		err := notFound.WithCause(errors.New("record not found"))
		assert.True(t, errors.Is(err, notFound))
		assert.Equal(t, "record not found", errors.Unwrap(err).Error())
	})

	t.Run("fmt包装后仍可识别", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", notFound)
		assert.True(t, errors.Is(err, notFound))
	})

	t.Run("不同错误码不相等", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInvalidToken, ErrTokenExpired))
	})
}

func TestGetAppError(t *testing.T) {
	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("dial tcp: refused"))
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, "Internal server error", appErr.Message)
		assert.Error(t, appErr.Err)
	})

	t.Run("AppError原样返回", func(t *testing.T) {
		appErr := GetAppError(fmt.Errorf("wrap: %w", ErrInvalidToken))
		assert.Same(t, ErrInvalidToken, appErr)
	})

	assert.True(t, IsAppError(ErrValidation))
	assert.False(t, IsAppError(errors.New("plain")))
}
