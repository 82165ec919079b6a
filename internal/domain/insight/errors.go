package insight

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

var (
	// ErrInsightNotFound 书评不存在
	ErrInsightNotFound = apperrors.New(apperrors.ErrCodeInsightNotFound, "Insight not found")

	ErrInvalidTitle        = apperrors.New(apperrors.ErrCodeInvalidParams, "title must be between 1 and 200 characters")
	ErrDescriptionRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "description is required")
)
