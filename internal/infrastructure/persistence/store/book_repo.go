package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := toBookModel(b)

	// 2. 插入数据库(不级联写入关联)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		// 唯一索引兜底：并发请求可能同时通过服务层的ISBN检查
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "failed to create book")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书(预加载作者和出版社)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).Scopes(withBookRelations).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query book")
	}
	return toBookEntity(&model), nil
}

// Exists 图书是否存在
func (r *bookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "failed to query book")
	}
	return count > 0, nil
}

// ExistsByISBN ISBN是否已被占用
func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	if err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("isbn = ?", isbn).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "failed to query book")
	}
	return count > 0, nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	// 使用Save更新所有字段(包括置NULL的字段)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "failed to update book")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书(物理删除)
// insights.book_id由外键ON DELETE SET NULL处理
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// List 分页查询图书
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if params.Title != "" {
			db = db.Where("LOWER(title) LIKE ?", likePattern(params.Title))
		}
		if params.AuthorID != nil {
			db = db.Where("author_id = ?", *params.AuthorID)
		}
		if params.PublisherID != nil {
			db = db.Where("publisher_id = ?", *params.PublisherID)
		}
		return db
	}

	// 1. 查询总数
	var total int64
	if err := dbFrom(ctx, r.db).Model(&BookModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count books")
	}

	// 2. 分页查询
	page := params.Page.Normalize()
	var models []BookModel
	err := dbFrom(ctx, r.db).Scopes(filter, withBookRelations).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query books")
	}

	// 3. 转换为领域实体
	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, toBookEntity(&models[i]))
	}
	return books, total, nil
}

func withBookRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author", func(db *gorm.DB) *gorm.DB { return db.Select("id", "first_name", "last_name") }).
		Preload("Publisher", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") })
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublicationDate: b.PublicationDate,
		Price:           b.Price,
		Description:     b.Description,
		AuthorID:        b.AuthorID,
		PublisherID:     b.PublisherID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	b := &book.Book{
		ID:              m.ID,
		Title:           m.Title,
		ISBN:            m.ISBN,
		PublicationDate: m.PublicationDate,
		Price:           m.Price,
		Description:     m.Description,
		AuthorID:        m.AuthorID,
		PublisherID:     m.PublisherID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Author != nil {
		b.Author = &book.AuthorSummary{ID: m.Author.ID, FirstName: m.Author.FirstName, LastName: m.Author.LastName}
	}
	if m.Publisher != nil {
		b.Publisher = &book.PublisherSummary{ID: m.Publisher.ID, Name: m.Publisher.Name}
	}
	return b
}
