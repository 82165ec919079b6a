package insight

import (
	"context"

	"github.com/xiebiao/library/pkg/pagination"
)

// Repository 书评仓储接口
type Repository interface {
	Create(ctx context.Context, insight *Insight) error
	// FindByID 预加载Book摘要，不存在返回ErrInsightNotFound
	FindByID(ctx context.Context, id uint) (*Insight, error)
	Update(ctx context.Context, insight *Insight) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params ListParams) ([]*Insight, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	BookID *uint // 按图书过滤
	pagination.Page
}
