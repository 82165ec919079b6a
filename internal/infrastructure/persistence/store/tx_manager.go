package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/book"
)

// TxManager 事务管理器
// 教学要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 支持嵌套事务(已在事务中时复用外层事务，GORM使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

var _ book.Transactor = (*TxManager)(nil)

// Transaction 执行事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := checkAuthor(ctx, authorID); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.Create(ctx, b)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFrom(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中，Repository通过dbFrom取出
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
