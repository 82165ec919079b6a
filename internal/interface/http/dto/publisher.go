package dto

import (
	"time"

	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/pkg/patch"
)

// CreatePublisherRequest 创建出版社请求
type CreatePublisherRequest struct {
	Name         string  `json:"name" binding:"required,max=100" example:"Penguin"`
	FoundingYear *int    `json:"founding_year" example:"1935"`
	Website      *string `json:"website" binding:"omitempty,max=200" example:"https://www.penguin.co.uk"`
}

// ToEntity 转换为领域实体
func (r *CreatePublisherRequest) ToEntity() *publisher.Publisher {
	return publisher.NewPublisher(r.Name, r.FoundingYear, r.Website)
}

// UpdatePublisherRequest 局部更新出版社
type UpdatePublisherRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100" example:"Penguin Books"`
	FoundingYear *int    `json:"founding_year" example:"1935"`
	Website      *string `json:"website" binding:"omitempty,max=200"`
}

// PublisherNotNull 出版社不可置null的字段
var PublisherNotNull = []string{"name"}

// ToPatch 转换为领域层Patch
func (r *UpdatePublisherRequest) ToPatch(doc patch.Doc) publisher.Patch {
	return publisher.Patch{
		Name:         patch.Value(r.Name),
		FoundingYear: patch.Nullable(doc, "founding_year", r.FoundingYear),
		Website:      patch.Nullable(doc, "website", r.Website),
	}
}

// PublisherResponse 出版社响应
type PublisherResponse struct {
	ID           uint      `json:"id" example:"1"`
	Name         string    `json:"name" example:"Penguin"`
	FoundingYear *int      `json:"founding_year" example:"1935"`
	Website      *string   `json:"website" example:"https://www.penguin.co.uk"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Books        []BookRef `json:"books"`
}

// NewPublisherResponse 领域实体 → 响应
func NewPublisherResponse(p *publisher.Publisher) *PublisherResponse {
	books := make([]BookRef, 0, len(p.Books))
	for _, b := range p.Books {
		books = append(books, BookRef{ID: b.ID, Title: b.Title})
	}
	return &PublisherResponse{
		ID:           p.ID,
		Name:         p.Name,
		FoundingYear: p.FoundingYear,
		Website:      p.Website,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Books:        books,
	}
}

// NewPublisherList 列表响应
func NewPublisherList(list []*publisher.Publisher) []*PublisherResponse {
	out := make([]*PublisherResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewPublisherResponse(p))
	}
	return out
}
