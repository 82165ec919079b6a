package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN already exists")

	// ErrInvalidISBN ISBN长度不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "isbn must be exactly 13 characters")

	// ErrInvalidTitle 书名为空或过长
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "title must be between 1 and 200 characters")
)
