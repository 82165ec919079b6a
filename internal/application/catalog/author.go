package catalog

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/catalog"

// AuthorUseCase 作者用例
// 设计说明:
// 1. 应用层负责用例编排,业务规则由领域服务负责
// 2. 写操作成功后记录指标并发布目录事件
// 3. 每个用例一个Span
type AuthorUseCase struct {
	authors author.Service
	books   book.Service
	recorder
}

// NewAuthorUseCase 创建作者用例
func NewAuthorUseCase(authors author.Service, books book.Service, events EventPublisher) *AuthorUseCase {
	return &AuthorUseCase{
		authors:  authors,
		books:    books,
		recorder: recorder{events: events},
	}
}

// List 分页查询作者，params.Name非空时按名或姓搜索
func (uc *AuthorUseCase) List(ctx context.Context, params author.ListParams) (list []*author.Author, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorUseCase.List")
	defer func() { tracing.End(span, err) }()

	params.Page = params.Page.Normalize()
	list, total, err := uc.authors.List(ctx, params)
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(params.Page, total), nil
}

// Get 作者详情
func (uc *AuthorUseCase) Get(ctx context.Context, id uint) (a *author.Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorUseCase.Get")
	defer func() { tracing.End(span, err) }()

	return uc.authors.Get(ctx, id)
}

// Books 作者名下的图书
func (uc *AuthorUseCase) Books(ctx context.Context, id uint, page pagination.Page) (list []*book.Book, meta pagination.Meta, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorUseCase.Books")
	defer func() { tracing.End(span, err) }()

	page = page.Normalize()
	list, total, err := uc.books.ListByAuthor(ctx, id, book.ListParams{Page: page})
	if err != nil {
		return nil, meta, err
	}
	return list, pagination.NewMeta(page, total), nil
}

// Create 创建作者
func (uc *AuthorUseCase) Create(ctx context.Context, a *author.Author) (created *author.Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorUseCase.Create")
	defer func() { tracing.End(span, err) }()

	created, err = uc.authors.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityAuthor, ActionCreated, created.ID)
	logger.FromContext(ctx).Info().Uint("author_id", created.ID).Str("name", created.FullName()).Msg("作者已创建")
	return created, nil
}

// Update 局部更新作者
func (uc *AuthorUseCase) Update(ctx context.Context, id uint, p author.Patch) (updated *author.Author, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorUseCase.Update")
	defer func() { tracing.End(span, err) }()

	updated, err = uc.authors.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	uc.record(ctx, EntityAuthor, ActionUpdated, id)
	return updated, nil
}

// Delete 删除作者(名下有图书时拒绝)
func (uc *AuthorUseCase) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AuthorUseCase.Delete")
	defer func() { tracing.End(span, err) }()

	if err = uc.authors.Delete(ctx, id); err != nil {
		return err
	}
	uc.record(ctx, EntityAuthor, ActionDeleted, id)
	return nil
}
