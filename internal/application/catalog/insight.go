package catalog

import (
	"context"

	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/tracing"
)

// InsightUseCase 书评用例
type InsightUseCase struct {
	insights insight.Service
	recorder
}

// NewInsightUseCase 创建书评用例
func NewInsightUseCase(insights insight.Service, events EventPublisher) *InsightUseCase {
	return &InsightUseCase{
		insights: insights,
		recorder: recorder{events: events},
	}
}

// List 分页查询书评，params.BookID非nil时按图书过滤(不校验图书是否存在)
func (uc *InsightUseCase) List(ctx context.Context, params insight.ListParams) (list []*insight.Insight, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "InsightUseCase.List")
	defer func() { tracing.End(span, err) }()

	params.Page = params.Page.Normalize()
	list, total, err := uc.insights.List(ctx, params)
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(params.Page, total), nil
}

func (uc *InsightUseCase) Get(ctx context.Context, id uint) (i *insight.Insight, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "InsightUseCase.Get")
	defer func() { tracing.End(span, err) }()

	return uc.insights.Get(ctx, id)
}

func (uc *InsightUseCase) Create(ctx context.Context, i *insight.Insight) (created *insight.Insight, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "InsightUseCase.Create")
	defer func() { tracing.End(span, err) }()

	created, err = uc.insights.Create(ctx, i)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityInsight, ActionCreated, created.ID)
	return created, nil
}

func (uc *InsightUseCase) Update(ctx context.Context, id uint, p insight.Patch) (updated *insight.Insight, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "InsightUseCase.Update")
	defer func() { tracing.End(span, err) }()

	updated, err = uc.insights.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityInsight, ActionUpdated, id)
	return updated, nil
}

func (uc *InsightUseCase) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "InsightUseCase.Delete")
	defer func() { tracing.End(span, err) }()

	if err = uc.insights.Delete(ctx, id); err != nil {
		return err
	}
	uc.record(ctx, EntityInsight, ActionDeleted, id)
	return nil
}
