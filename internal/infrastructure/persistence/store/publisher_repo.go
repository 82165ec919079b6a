package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/publisher"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// publisherRepository 出版社仓储实现
type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	model := toPublisherModel(p)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create publisher")
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var model PublisherModel
	err := dbFrom(ctx, r.db).Preload("Books", bookSummaryScope("publisher_id")).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query publisher")
	}
	return toPublisherEntity(&model), nil
}

func (r *publisherRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := dbFrom(ctx, r.db).Model(&PublisherModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "failed to query publisher")
	}
	return count > 0, nil
}

func (r *publisherRepository) Update(ctx context.Context, p *publisher.Publisher) error {
	model := toPublisherModel(p)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to update publisher")
	}
	p.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除出版社
// books.publisher_id由外键ON DELETE SET NULL处理
func (r *publisherRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&PublisherModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete publisher")
	}
	if result.RowsAffected == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

func (r *publisherRepository) List(ctx context.Context, params publisher.ListParams) ([]*publisher.Publisher, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if params.Name == "" {
			return db
		}
		return db.Where("LOWER(name) LIKE ?", likePattern(params.Name))
	}

	var total int64
	if err := dbFrom(ctx, r.db).Model(&PublisherModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count publishers")
	}

	page := params.Page.Normalize()
	var models []PublisherModel
	err := dbFrom(ctx, r.db).Scopes(filter).
		Preload("Books", bookSummaryScope("publisher_id")).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query publishers")
	}

	publishers := make([]*publisher.Publisher, 0, len(models))
	for i := range models {
		publishers = append(publishers, toPublisherEntity(&models[i]))
	}
	return publishers, total, nil
}

func toPublisherModel(p *publisher.Publisher) *PublisherModel {
	return &PublisherModel{
		ID:           p.ID,
		Name:         p.Name,
		FoundingYear: p.FoundingYear,
		Website:      p.Website,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPublisherEntity(m *PublisherModel) *publisher.Publisher {
	books := make([]publisher.BookSummary, 0, len(m.Books))
	for _, b := range m.Books {
		books = append(books, publisher.BookSummary{ID: b.ID, Title: b.Title})
	}
	return &publisher.Publisher{
		ID:           m.ID,
		Name:         m.Name,
		FoundingYear: m.FoundingYear,
		Website:      m.Website,
		Books:        books,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
