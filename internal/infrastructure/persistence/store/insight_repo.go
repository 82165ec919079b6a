package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/insight"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository 创建书评仓储
func NewInsightRepository(db *gorm.DB) insight.Repository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(ctx context.Context, i *insight.Insight) error {
	model := toInsightModel(i)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create insight")
	}
	i.ID = model.ID
	i.CreatedAt = model.CreatedAt
	i.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *insightRepository) FindByID(ctx context.Context, id uint) (*insight.Insight, error) {
	var model InsightModel
	err := dbFrom(ctx, r.db).Scopes(withInsightBook).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, insight.ErrInsightNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query insight")
	}
	return toInsightEntity(&model), nil
}

func (r *insightRepository) Update(ctx context.Context, i *insight.Insight) error {
	model := toInsightModel(i)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to update insight")
	}
	i.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *insightRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&InsightModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to delete insight")
	}
	if result.RowsAffected == 0 {
		return insight.ErrInsightNotFound
	}
	return nil
}

func (r *insightRepository) List(ctx context.Context, params insight.ListParams) ([]*insight.Insight, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if params.BookID != nil {
			return db.Where("book_id = ?", *params.BookID)
		}
		return db
	}

	var total int64
	if err := dbFrom(ctx, r.db).Model(&InsightModel{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count insights")
	}

	page := params.Page.Normalize()
	var models []InsightModel
	err := dbFrom(ctx, r.db).Scopes(filter, withInsightBook).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to query insights")
	}

	insights := make([]*insight.Insight, 0, len(models))
	for i := range models {
		insights = append(insights, toInsightEntity(&models[i]))
	}
	return insights, total, nil
}

func withInsightBook(db *gorm.DB) *gorm.DB {
	return db.Preload("Book", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") })
}

func toInsightModel(i *insight.Insight) *InsightModel {
	return &InsightModel{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		BookID:      i.BookID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toInsightEntity(m *InsightModel) *insight.Insight {
	i := &insight.Insight{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		BookID:      m.BookID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Book != nil {
		i.Book = &insight.BookSummary{ID: m.Book.ID, Title: m.Book.Title}
	}
	return i
}
