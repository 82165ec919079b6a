package dto

import (
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/patch"
)

// CreateBookRequest 创建图书请求
// validator tag说明:
// - isbn可选，出现时必须是13位
// - price接受数字或字符串，统一按decimal处理
type CreateBookRequest struct {
	Title           string   `json:"title" binding:"required,min=1,max=200" example:"Pride and Prejudice"`
	ISBN            *string  `json:"isbn" binding:"omitempty,len=13" example:"9780141439518"`
	PublicationDate *Date    `json:"publication_date" swaggertype:"string" example:"1813-01-28"`
	Price           *Decimal `json:"price" swaggertype:"string" example:"9.99"`
	Description     *string  `json:"description"`
	AuthorID        *uint    `json:"author_id" binding:"required" example:"1"`
	PublisherID     *uint    `json:"publisher_id" binding:"required" example:"1"`
}

// ToEntity 转换为领域实体
func (r *CreateBookRequest) ToEntity() *book.Book {
	b := book.NewBook(r.Title, *r.AuthorID, *r.PublisherID)
	b.ISBN = book.NormalizeISBN(r.ISBN)
	b.PublicationDate = r.PublicationDate.TimePtr()
	b.Price = r.Price.DecimalPtr()
	b.Description = r.Description
	return b
}

// UpdateBookRequest 局部更新图书
type UpdateBookRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=1,max=200" example:"Emma"`
	ISBN            *string  `json:"isbn" binding:"omitempty,len=13" example:"9780141439587"`
	PublicationDate *Date    `json:"publication_date" swaggertype:"string" example:"1815-12-23"`
	Price           *Decimal `json:"price" swaggertype:"string" example:"8.99"`
	Description     *string  `json:"description"`
	AuthorID        *uint    `json:"author_id" example:"1"`
	PublisherID     *uint    `json:"publisher_id" example:"1"`
}

// BookNotNull 图书不可置null的字段
// author_id、publisher_id为null时由领域服务按"引用不存在"处理
var BookNotNull = []string{"title"}

// ToPatch 转换为领域层Patch
func (r *UpdateBookRequest) ToPatch(doc patch.Doc) book.Patch {
	return book.Patch{
		Title:           patch.Value(r.Title),
		ISBN:            patch.Nullable(doc, "isbn", r.ISBN),
		PublicationDate: patch.Nullable(doc, "publication_date", r.PublicationDate.TimePtr()),
		Price:           patch.Nullable(doc, "price", r.Price.DecimalPtr()),
		Description:     patch.Nullable(doc, "description", r.Description),
		AuthorID:        patch.Nullable(doc, "author_id", r.AuthorID),
		PublisherID:     patch.Nullable(doc, "publisher_id", r.PublisherID),
	}
}

// AuthorRef 图书的作者摘要
type AuthorRef struct {
	ID        uint   `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"Jane"`
	LastName  string `json:"last_name" example:"Austen"`
}

// PublisherRef 图书的出版社摘要
type PublisherRef struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Penguin"`
}

// BookResponse 图书响应
// author、publisher引用不存在时为null
type BookResponse struct {
	ID              uint          `json:"id" example:"1"`
	Title           string        `json:"title" example:"Pride and Prejudice"`
	ISBN            *string       `json:"isbn" example:"9780141439518"`
	PublicationDate *Date         `json:"publication_date" swaggertype:"string" example:"1813-01-28"`
	Price           *string       `json:"price" example:"9.99"`
	Description     *string       `json:"description"`
	AuthorID        *uint         `json:"author_id" example:"1"`
	PublisherID     *uint         `json:"publisher_id" example:"1"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Author          *AuthorRef    `json:"author"`
	Publisher       *PublisherRef `json:"publisher"`
}

// NewBookResponse 领域实体 → 响应
func NewBookResponse(b *book.Book) *BookResponse {
	resp := &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublicationDate: NewDate(b.PublicationDate),
		Price:           FormatPrice(b.Price),
		Description:     b.Description,
		AuthorID:        b.AuthorID,
		PublisherID:     b.PublisherID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.Author != nil {
		resp.Author = &AuthorRef{ID: b.Author.ID, FirstName: b.Author.FirstName, LastName: b.Author.LastName}
	}
	if b.Publisher != nil {
		resp.Publisher = &PublisherRef{ID: b.Publisher.ID, Name: b.Publisher.Name}
	}
	return resp
}

// NewBookList 列表响应
func NewBookList(list []*book.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(list))
	for _, b := range list {
		out = append(out, NewBookResponse(b))
	}
	return out
}
