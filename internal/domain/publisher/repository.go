package publisher

import (
	"context"

	"github.com/xiebiao/library/pkg/pagination"
)

// Repository 出版社仓储接口
type Repository interface {
	Create(ctx context.Context, publisher *Publisher) error

	// FindByID 预加载Books摘要,不存在返回ErrPublisherNotFound
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	Exists(ctx context.Context, id uint) (bool, error)

	Update(ctx context.Context, publisher *Publisher) error

	// Delete 删除出版社,关联图书的publisher_id由外键置NULL
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, params ListParams) ([]*Publisher, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Name string // 名称包含Name(不区分大小写)
	pagination.Page
}
