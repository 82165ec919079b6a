package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// authorRepository 作者仓储实现
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 查询时预加载图书摘要(id、title)，按id升序
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)

	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create author")
	}

	// 回填自增ID
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找作者(含图书摘要)
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := dbFrom(ctx, r.db).Preload("Books", bookSummaryScope("author_id")).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query author")
	}
	return toAuthorEntity(&model), nil
}

// Exists 作者是否存在
func (r *authorRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := dbFrom(ctx, r.db).Model(&AuthorModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "failed to query author")
	}
	return count > 0, nil
}

// Update 保存作者的全部字段
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to update author")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者
// 外键拒绝删除时返回(false, nil)，由服务层转换为业务错误
func (r *authorRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := dbFrom(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return false, nil
		}
		return false, apperrors.Wrap(result.Error, "failed to delete author")
	}
	return result.RowsAffected > 0, nil
}

// List 分页查询作者
// Name非空时匹配名或姓(不区分大小写)
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if params.Name == "" {
			return db
		}
		pattern := likePattern(params.Name)
		return db.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := dbFrom(ctx, r.db).Model(&AuthorModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count authors")
	}

	page := params.Page.Normalize()
	var models []AuthorModel
	err := dbFrom(ctx, r.db).Scopes(filter).
		Preload("Books", bookSummaryScope("author_id")).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query authors")
	}

	authors := make([]*author.Author, 0, len(models))
	for i := range models {
		authors = append(authors, toAuthorEntity(&models[i]))
	}
	return authors, total, nil
}

// bookSummaryScope 预加载图书摘要时只查需要的列
// 外键列必须包含在内，GORM据此把图书归属到父记录
func bookSummaryScope(foreignKey string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "title", foreignKey).Order("id ASC")
	}
}

func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Biography: a.Biography,
		BirthDate: a.BirthDate,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	books := make([]author.BookSummary, 0, len(m.Books))
	for _, b := range m.Books {
		books = append(books, author.BookSummary{ID: b.ID, Title: b.Title})
	}
	return &author.Author{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Biography: m.Biography,
		BirthDate: m.BirthDate,
		Books:     books,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
