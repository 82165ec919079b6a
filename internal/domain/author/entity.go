package author

import (
	"strings"
	"time"

	"github.com/xiebiao/library/pkg/patch"
)

// 字段长度限制（与数据库列宽一致）
const (
	MaxNameLength = 50
)

// Author 作者实体(聚合根)
// DDD设计说明:
// 1. Author拥有多本Book，Books只保存摘要(id、title)，由仓储预加载
// 2. 仍有图书的作者不能删除(见Service.Delete)
type Author struct {
	ID        uint
	FirstName string
	LastName  string
	Biography *string
	BirthDate *time.Time
	Books     []BookSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookSummary 作者名下图书摘要
type BookSummary struct {
	ID    uint
	Title string
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(firstName, lastName string, biography *string, birthDate *time.Time) *Author {
	return &Author{
		FirstName: firstName,
		LastName:  lastName,
		Biography: biography,
		BirthDate: birthDate,
	}
}

// Patch 局部更新，只应用Set=true的字段
type Patch struct {
	FirstName patch.Field[string]
	LastName  patch.Field[string]
	Biography patch.Field[*string]
	BirthDate patch.Field[*time.Time]
}

// Apply 应用局部更新
func (a *Author) Apply(p Patch) {
	p.FirstName.Apply(&a.FirstName)
	p.LastName.Apply(&a.LastName)
	p.Biography.Apply(&a.Biography)
	p.BirthDate.Apply(&a.BirthDate)
}

// Validate 业务规则: 姓、名必填且不超过50个字符
func (a *Author) Validate() error {
	for _, name := range []string{a.FirstName, a.LastName} {
		if strings.TrimSpace(name) == "" {
			return ErrNameRequired
		}
		if len([]rune(name)) > MaxNameLength {
			return ErrNameTooLong
		}
	}
	return nil
}

// HasBooks 是否仍有图书
func (a *Author) HasBooks() bool {
	return len(a.Books) > 0
}

// FullName 全名
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
