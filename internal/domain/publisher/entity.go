package publisher

import (
	"strings"
	"time"

	"github.com/xiebiao/library/pkg/patch"
)

const (
	MaxNameLength    = 100
	MaxWebsiteLength = 200
)

// Publisher 出版社实体
// 删除出版社不受图书约束，图书的publisher_id由数据库外键置为NULL
type Publisher struct {
	ID           uint
	Name         string
	FoundingYear *int
	Website      *string
	Books        []BookSummary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookSummary 出版社图书摘要
type BookSummary struct {
	ID    uint
	Title string
}

// NewPublisher 创建出版社
func NewPublisher(name string, foundingYear *int, website *string) *Publisher {
	return &Publisher{
		Name:         name,
		FoundingYear: foundingYear,
		Website:      website,
	}
}

// Patch 局部更新
type Patch struct {
	Name         patch.Field[string]
	FoundingYear patch.Field[*int]
	Website      patch.Field[*string]
}

// Apply 应用局部更新
func (p *Publisher) Apply(changes Patch) {
	changes.Name.Apply(&p.Name)
	changes.FoundingYear.Apply(&p.FoundingYear)
	changes.Website.Apply(&p.Website)
}

// Validate 名称必填
func (p *Publisher) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if len([]rune(p.Name)) > MaxNameLength {
		return ErrNameTooLong
	}
	if p.Website != nil && len(*p.Website) > MaxWebsiteLength {
		return ErrWebsiteTooLong
	}
	return nil
}
