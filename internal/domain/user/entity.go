package user

import (
	"time"
)

// User 用户实体(聚合根)
// 设计说明:
// 1. Password只保存bcrypt哈希值，任何响应都不返回
// 2. Username、Email全局唯一
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string // bcrypt哈希值
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword: 已加密的密码(调用方负责加密)
func NewUser(username, email, hashedPassword string) *User {
	return &User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}
}

// ChangePassword 替换密码哈希
func (u *User) ChangePassword(hashedPassword string) {
	u.Password = hashedPassword
	u.UpdatedAt = time.Now()
}
