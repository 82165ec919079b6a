package publisher

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 出版社领域错误定义
var (
	// ErrPublisherNotFound 出版社不存在
	ErrPublisherNotFound = apperrors.New(apperrors.ErrCodePublisherNotFound, "Publisher not found")

	ErrNameRequired   = apperrors.New(apperrors.ErrCodeInvalidParams, "name is required")
	ErrNameTooLong    = apperrors.New(apperrors.ErrCodeInvalidParams, "name must be at most 100 characters")
	ErrWebsiteTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "website must be at most 200 characters")
)
