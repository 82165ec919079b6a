package catalog

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/tracing"
)

// BookUseCase 图书用例
// 设计说明:
// 1. 引用校验、ISBN唯一性由领域服务负责(在同一事务中)
// 2. 应用层只做编排: Span、指标、事件
type BookUseCase struct {
	books    book.Service
	insights insight.Service
	recorder
}

// NewBookUseCase 创建图书用例
func NewBookUseCase(books book.Service, insights insight.Service, events EventPublisher) *BookUseCase {
	return &BookUseCase{
		books:    books,
		insights: insights,
		recorder: recorder{events: events},
	}
}

// List 分页查询图书，params.Title非空时按书名搜索
func (uc *BookUseCase) List(ctx context.Context, params book.ListParams) (list []*book.Book, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookUseCase.List")
	defer func() { tracing.End(span, err) }()

	params.Page = params.Page.Normalize()
	list, total, err := uc.books.List(ctx, params)
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(params.Page, total), nil
}

func (uc *BookUseCase) Get(ctx context.Context, id uint) (b *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookUseCase.Get")
	defer func() { tracing.End(span, err) }()

	return uc.books.Get(ctx, id)
}

// Insights 图书的书评
func (uc *BookUseCase) Insights(ctx context.Context, id uint, page pagination.Page) (list []*insight.Insight, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookUseCase.Insights")
	defer func() { tracing.End(span, err) }()

	page = page.Normalize()
	list, total, err := uc.insights.ListByBook(ctx, id, insight.ListParams{Page: page})
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(page, total), nil
}

// Create 创建图书
func (uc *BookUseCase) Create(ctx context.Context, b *book.Book) (created *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookUseCase.Create")
	defer func() { tracing.End(span, err) }()

	created, err = uc.books.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityBook, ActionCreated, created.ID)
	return created, nil
}

// Update 局部更新图书
func (uc *BookUseCase) Update(ctx context.Context, id uint, p book.Patch) (updated *book.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookUseCase.Update")
	defer func() { tracing.End(span, err) }()

	updated, err = uc.books.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityBook, ActionUpdated, id)
	return updated, nil
}

// Delete 删除图书，书评的book_id置NULL
func (uc *BookUseCase) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookUseCase.Delete")
	defer func() { tracing.End(span, err) }()

	if err = uc.books.Delete(ctx, id); err != nil {
		return err
	}
	uc.record(ctx, EntityBook, ActionDeleted, id)
	return nil
}
