package author

import (
	"context"

	"github.com/xiebiao/library/pkg/pagination"
)

// Repository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. FindByID、List返回的实体已预加载Books摘要
type Repository interface {
	// Create 创建作者,回填ID与时间戳
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者,不存在返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Exists 作者是否存在(图书、书评写入前的引用校验)
	Exists(ctx context.Context, id uint) (bool, error)

	// Update 保存作者全部字段
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者
	// 返回false表示存储层未删除任何行(外键约束拒绝或记录已不存在)
	Delete(ctx context.Context, id uint) (bool, error)

	// List 分页查询,total为过滤后的总数
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Name string // 名或姓包含Name(不区分大小写),为空不过滤
	pagination.Page
}
