package book

import (
	"context"

	"github.com/xiebiao/library/pkg/pagination"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. FindByID、List返回的实体已预加载Author、Publisher摘要
// 3. 实现需要从ctx中获取事务(见Transactor)
type Repository interface {
	// Create 创建图书，ISBN唯一索引冲突返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Exists 图书是否存在(书评写入前的引用校验)
	Exists(ctx context.Context, id uint) (bool, error)

	// ExistsByISBN ISBN是否已被占用
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// Update 保存图书全部字段
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书，关联书评的book_id由外键置NULL
	Delete(ctx context.Context, id uint) error

	// List 分页查询，total为过滤后的总数
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Title       string // 书名包含Title(不区分大小写)
	AuthorID    *uint  // 按作者过滤
	PublisherID *uint  // 按出版社过滤
	pagination.Page
}

// Transactor 事务执行器
// fn内通过ctx调用的仓储方法处于同一事务，fn返回error时回滚
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
