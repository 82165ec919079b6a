package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一索引冲突错误
// - MySQL 1062:     Duplicate entry 'xxx' for key 'yyy'
// - PostgreSQL:     duplicate key value violates unique constraint
// - SQLite:         UNIQUE constraint failed: books.isbn
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint failed")
}

// isForeignKeyError 判断是否为外键约束错误
// - MySQL 1451:     Cannot delete or update a parent row: a foreign key constraint fails
// - PostgreSQL:     violates foreign key constraint
// - SQLite:         FOREIGN KEY constraint failed
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// likePattern 不区分大小写的子串匹配参数，配合 LOWER(col) LIKE ? 使用
// LOWER() + LIKE 在三种方言中行为一致（PostgreSQL的LIKE区分大小写）
func likePattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// txKey context中事务DB的key
type txKey struct{}

// dbFrom 从context获取事务DB，如果没有则使用默认DB
// 教学要点:事务传递机制(见TxManager)
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
