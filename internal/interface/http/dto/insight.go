package dto

import (
	"time"

	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/pkg/patch"
)

// CreateInsightRequest 创建书评请求
// book_id缺省时由领域服务返回"Book not found"
type CreateInsightRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"A witty social satire"`
	Description string `json:"description" binding:"required" example:"Austen's sharpest dialogue."`
	BookID      *uint  `json:"book_id" example:"1"`
}

// ToEntity 转换为领域实体
func (r *CreateInsightRequest) ToEntity() *insight.Insight {
	return &insight.Insight{
		Title:       r.Title,
		Description: r.Description,
		BookID:      r.BookID,
	}
}

// UpdateInsightRequest 局部更新书评
type UpdateInsightRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	BookID      *uint   `json:"book_id" example:"1"`
}

// InsightNotNull 书评不可置null的字段
var InsightNotNull = []string{"title", "description"}

// ToPatch 转换为领域层Patch
func (r *UpdateInsightRequest) ToPatch(doc patch.Doc) insight.Patch {
	return insight.Patch{
		Title:       patch.Value(r.Title),
		Description: patch.Value(r.Description),
		BookID:      patch.Nullable(doc, "book_id", r.BookID),
	}
}

// InsightResponse 书评响应
type InsightResponse struct {
	ID          uint      `json:"id" example:"1"`
	Title       string    `json:"title" example:"A witty social satire"`
	Description string    `json:"description"`
	BookID      *uint     `json:"book_id" example:"1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Book        *BookRef  `json:"book"`
}

// NewInsightResponse 领域实体 → 响应
func NewInsightResponse(i *insight.Insight) *InsightResponse {
	resp := &InsightResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		BookID:      i.BookID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.Book != nil {
		resp.Book = &BookRef{ID: i.Book.ID, Title: i.Book.Title}
	}
	return resp
}

// NewInsightList 列表响应
func NewInsightList(list []*insight.Insight) []*InsightResponse {
	out := make([]*InsightResponse, 0, len(list))
	for _, i := range list {
		out = append(out, NewInsightResponse(i))
	}
	return out
}
