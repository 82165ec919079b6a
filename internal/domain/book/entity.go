package book

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/library/pkg/patch"
)

const (
	MaxTitleLength = 200
	ISBNLength     = 13
)

// Book 图书实体
// DDD设计说明:
// 1. AuthorID、PublisherID写入时必须指向已存在的记录，之后可能因出版社删除变为NULL
// 2. ISBN可选，存在时全局唯一(服务层预检 + 唯一索引兜底)
// 3. 价格使用decimal，避免浮点误差(数据库列decimal(10,2))
type Book struct {
	ID              uint
	Title           string
	ISBN            *string
	PublicationDate *time.Time
	Price           *decimal.Decimal
	Description     *string
	AuthorID        *uint
	PublisherID     *uint
	Author          *AuthorSummary    // 预加载，作者不存在时为nil
	Publisher       *PublisherSummary // 预加载，出版社不存在时为nil
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AuthorSummary 图书的作者摘要
type AuthorSummary struct {
	ID        uint
	FirstName string
	LastName  string
}

// PublisherSummary 图书的出版社摘要
type PublisherSummary struct {
	ID   uint
	Name string
}

// NewBook 创建新图书(工厂方法)
func NewBook(title string, authorID, publisherID uint) *Book {
	return &Book{
		Title:       title,
		AuthorID:    &authorID,
		PublisherID: &publisherID,
	}
}

// Patch 局部更新
// AuthorID、PublisherID出现即重新校验，null视为引用不存在
type Patch struct {
	Title           patch.Field[string]
	ISBN            patch.Field[*string]
	PublicationDate patch.Field[*time.Time]
	Price           patch.Field[*decimal.Decimal]
	Description     patch.Field[*string]
	AuthorID        patch.Field[*uint]
	PublisherID     patch.Field[*uint]
}

// Apply 应用局部更新
func (b *Book) Apply(p Patch) {
	p.Title.Apply(&b.Title)
	p.ISBN.Apply(&b.ISBN)
	p.PublicationDate.Apply(&b.PublicationDate)
	p.Price.Apply(&b.Price)
	p.Description.Apply(&b.Description)
	p.AuthorID.Apply(&b.AuthorID)
	p.PublisherID.Apply(&b.PublisherID)
	b.ISBN = NormalizeISBN(b.ISBN)
}

// Validate 业务规则校验
func (b *Book) Validate() error {
	title := strings.TrimSpace(b.Title)
	if title == "" || utf8.RuneCountInString(b.Title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	if b.ISBN != nil && utf8.RuneCountInString(*b.ISBN) != ISBNLength {
		return ErrInvalidISBN
	}
	return nil
}

// NormalizeISBN 空串视为未提供(唯一索引允许多个NULL，但不允许多个空串)
func NormalizeISBN(isbn *string) *string {
	if isbn == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*isbn)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SameISBN ISBN是否未变化
func (b *Book) SameISBN(isbn *string) bool {
	if b.ISBN == nil || isbn == nil {
		return b.ISBN == nil && isbn == nil
	}
	return *b.ISBN == *isbn
}
