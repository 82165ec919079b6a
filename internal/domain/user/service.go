package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

const (
	MinUsernameLength = 2
	MaxUsernameLength = 80
	MinPasswordLength = 6
)

// HashCost bcrypt计算成本(配置项auth.bcrypt_cost)
type HashCost int

// Service 用户领域服务接口
type Service interface {
	// Register 用户注册
	// 业务规则:
	// - 用户名2-80个字符且唯一
	// - 邮箱格式合法且唯一
	// - 密码至少6位，bcrypt加密存储
	Register(ctx context.Context, username, email, password string) (*User, error)

	// Authenticate 邮箱+密码认证，失败统一返回ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// ChangePassword 校验旧密码后替换
	ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error

	Get(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
	cost int
}

// NewService 创建用户领域服务
func NewService(repo Repository, cost HashCost) Service {
	c := int(cost)
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		c = bcrypt.DefaultCost
	}
	return &service{repo: repo, cost: c}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	// 1. 参数校验
	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return nil, ErrInvalidUsername
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	// 2. 唯一性预检(先用户名后邮箱)，并发注册由唯一索引兜底
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameDuplicate
	}

	taken, err = s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailDuplicate
	}

	// 3. 密码加密
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	// 4. 持久化
	user := NewUser(username, email, hash)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verify(user.Password, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

func (s *service) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.verify(user.Password, oldPassword); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrIncorrectPassword
		}
		return err
	}

	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	hash, err := s.hash(newPassword)
	if err != nil {
		return err
	}

	user.ChangePassword(hash)
	return s.repo.Update(ctx, user)
}

func (s *service) Get(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// =========================================
// 辅助函数
// =========================================

func (s *service) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

// verify 比对密码，不匹配时返回bcrypt.ErrMismatchedHashAndPassword
func (s *service) verify(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperrors.Wrap(err, "failed to verify password")
	}
	return err
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
