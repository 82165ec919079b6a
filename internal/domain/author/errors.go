package author

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found")

	// ErrAuthorHasBooks 作者仍有图书，禁止删除
	ErrAuthorHasBooks = apperrors.New(apperrors.ErrCodeHasDependents, "Cannot delete author with books. Remove books first.")

	// ErrDeleteFailed 存储层拒绝删除（外键约束）
	ErrDeleteFailed = apperrors.New(apperrors.ErrCodeDeleteFailed, "Failed to delete author due to dependencies")

	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "first_name and last_name are required")
	ErrNameTooLong  = apperrors.New(apperrors.ErrCodeInvalidParams, "first_name and last_name must be at most 50 characters")
)
