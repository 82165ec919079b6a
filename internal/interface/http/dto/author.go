package dto

import (
	"time"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/pkg/patch"
)

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=50" example:"Jane"`
	LastName  string  `json:"last_name" binding:"required,max=50" example:"Austen"`
	Biography *string `json:"biography" example:"English novelist"`
	BirthDate *Date   `json:"birth_date" swaggertype:"string" example:"1775-12-16"`
}

// ToEntity 转换为领域实体
func (r *CreateAuthorRequest) ToEntity() *author.Author {
	return author.NewAuthor(r.FirstName, r.LastName, r.Biography, r.BirthDate.TimePtr())
}

// UpdateAuthorRequest 局部更新作者，只修改请求体中出现的字段
type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=50" example:"Jane"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=50" example:"Austen"`
	Biography *string `json:"biography"`
	BirthDate *Date   `json:"birth_date" swaggertype:"string" example:"1775-12-16"`
}

// AuthorNotNull 作者不可置null的字段
var AuthorNotNull = []string{"first_name", "last_name"}

// ToPatch 转换为领域层Patch
func (r *UpdateAuthorRequest) ToPatch(doc patch.Doc) author.Patch {
	return author.Patch{
		FirstName: patch.Value(r.FirstName),
		LastName:  patch.Value(r.LastName),
		Biography: patch.Nullable(doc, "biography", r.Biography),
		BirthDate: patch.Nullable(doc, "birth_date", r.BirthDate.TimePtr()),
	}
}

// BookRef 图书摘要
type BookRef struct {
	ID    uint   `json:"id" example:"1"`
	Title string `json:"title" example:"Pride and Prejudice"`
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID        uint      `json:"id" example:"1"`
	FirstName string    `json:"first_name" example:"Jane"`
	LastName  string    `json:"last_name" example:"Austen"`
	Biography *string   `json:"biography"`
	BirthDate *Date     `json:"birth_date" swaggertype:"string" example:"1775-12-16"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Books     []BookRef `json:"books"`
}

// NewAuthorResponse 领域实体 → 响应
func NewAuthorResponse(a *author.Author) *AuthorResponse {
	books := make([]BookRef, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, BookRef{ID: b.ID, Title: b.Title})
	}
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Biography: a.Biography,
		BirthDate: NewDate(a.BirthDate),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Books:     books,
	}
}

// NewAuthorList 列表响应，空列表输出[]
func NewAuthorList(list []*author.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAuthorResponse(a))
	}
	return out
}
