package user

import (
	"context"
)

// Repository 用户仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建用户，唯一索引冲突返回ErrUsernameDuplicate或ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 不存在返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 不存在返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
}
