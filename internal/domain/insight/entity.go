package insight

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xiebiao/library/pkg/patch"
)

const MaxTitleLength = 200

// Insight 书评(编辑推荐语)
// BookID写入时必须指向已存在的图书，图书删除后由外键置NULL
type Insight struct {
	ID          uint
	Title       string
	Description string
	BookID      *uint
	Book        *BookSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookSummary 书评关联的图书摘要
type BookSummary struct {
	ID    uint
	Title string
}

// NewInsight 创建书评
func NewInsight(title, description string, bookID uint) *Insight {
	return &Insight{
		Title:       title,
		Description: description,
		BookID:      &bookID,
	}
}

// Patch 局部更新
type Patch struct {
	Title       patch.Field[string]
	Description patch.Field[string]
	BookID      patch.Field[*uint]
}

// Apply 应用局部更新
func (i *Insight) Apply(p Patch) {
	p.Title.Apply(&i.Title)
	p.Description.Apply(&i.Description)
	p.BookID.Apply(&i.BookID)
}

// Validate 标题、内容必填
func (i *Insight) Validate() error {
	if strings.TrimSpace(i.Title) == "" || utf8.RuneCountInString(i.Title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(i.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}
