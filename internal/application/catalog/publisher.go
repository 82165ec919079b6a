package catalog

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/tracing"
)

// PublisherUseCase 出版社用例
type PublisherUseCase struct {
	publishers publisher.Service
	books      book.Service
	recorder
}

// NewPublisherUseCase 创建出版社用例
func NewPublisherUseCase(publishers publisher.Service, books book.Service, events EventPublisher) *PublisherUseCase {
	return &PublisherUseCase{
		publishers: publishers,
		books:      books,
		recorder:   recorder{events: events},
	}
}

// List 分页查询出版社，params.Name非空时按名称搜索
func (uc *PublisherUseCase) List(ctx context.Context, params publisher.ListParams) (list []*publisher.Publisher, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublisherUseCase.List")
	defer func() { tracing.End(span, err) }()

	params.Page = params.Page.Normalize()
	list, total, err := uc.publishers.List(ctx, params)
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(params.Page, total), nil
}

func (uc *PublisherUseCase) Get(ctx context.Context, id uint) (p *publisher.Publisher, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublisherUseCase.Get")
	defer func() { tracing.End(span, err) }()

	return uc.publishers.Get(ctx, id)
}

// Books 出版社名下的图书
func (uc *PublisherUseCase) Books(ctx context.Context, id uint, page pagination.Page) (list []*book.Book, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublisherUseCase.Books")
	defer func() { tracing.End(span, err) }()

	page = page.Normalize()
	list, total, err := uc.books.ListByPublisher(ctx, id, book.ListParams{Page: page})
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(page, total), nil
}

func (uc *PublisherUseCase) Create(ctx context.Context, p *publisher.Publisher) (created *publisher.Publisher, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublisherUseCase.Create")
	defer func() { tracing.End(span, err) }()

	created, err = uc.publishers.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityPublisher, ActionCreated, created.ID)
	return created, nil
}

func (uc *PublisherUseCase) Update(ctx context.Context, id uint, p publisher.Patch) (updated *publisher.Publisher, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublisherUseCase.Update")
	defer func() { tracing.End(span, err) }()

	updated, err = uc.publishers.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityPublisher, ActionUpdated, id)
	return updated, nil
}

// Delete 删除出版社，名下图书的publisher_id置NULL
func (uc *PublisherUseCase) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "PublisherUseCase.Delete")
	defer func() { tracing.End(span, err) }()

	if err = uc.publishers.Delete(ctx, id); err != nil {
		return err
	}
	uc.record(ctx, EntityPublisher, ActionDeleted, id)
	return nil
}
