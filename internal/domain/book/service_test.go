package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/testutil"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/patch"
)

type env struct {
	svc        book.Service
	authors    author.Repository
	publishers publisher.Repository
	author     *author.Author
	publisher  *publisher.Publisher
}

func setup(t *testing.T) *env {
	db := testutil.NewDB(t)
	e := &env{
		authors:    store.NewAuthorRepository(db),
		publishers: store.NewPublisherRepository(db),
	}
	e.svc = book.NewService(store.NewBookRepository(db), e.authors, e.publishers, store.NewTxManager(db))

	ctx := context.Background()
	e.author = author.NewAuthor("Jane", "Austen", nil, nil)
	require.NoError(t, e.authors.Create(ctx, e.author))
	e.publisher = publisher.NewPublisher("Penguin", nil, nil)
	require.NoError(t, e.publishers.Create(ctx, e.publisher))
	return e
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func TestService_Create(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	t.Run("返回预加载的作者和出版社", func(t *testing.T) {
		b := book.NewBook("Pride and Prejudice", e.author.ID, e.publisher.ID)
		price := decimal.RequireFromString("9.99")
		b.Price = &price

		created, err := e.svc.Create(ctx, b)
		require.NoError(t, err)
		require.NotNil(t, created.Author)
		assert.Equal(t, "Austen", created.Author.LastName)
		require.NotNil(t, created.Publisher)
		assert.Equal(t, "Penguin", created.Publisher.Name)
		assert.Equal(t, "9.99", created.Price.StringFixed(2))
	})

	t.Run("校验顺序: 作者 → 出版社 → ISBN", func(t *testing.T) {
		_, err := e.svc.Create(ctx, book.NewBook("X", 999, 999))
		assert.True(t, errors.Is(err, author.ErrAuthorNotFound), "作者优先")

		_, err = e.svc.Create(ctx, book.NewBook("X", e.author.ID, 999))
		assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound))
	})

	t.Run("ISBN重复不插入", func(t *testing.T) {
		first := book.NewBook("Emma", e.author.ID, e.publisher.ID)
		first.ISBN = strPtr("9780141439587")
		_, err := e.svc.Create(ctx, first)
		require.NoError(t, err)

		_, before, err := e.svc.List(ctx, book.ListParams{})
		require.NoError(t, err)

		dup := book.NewBook("Emma again", e.author.ID, e.publisher.ID)
		dup.ISBN = strPtr("9780141439587")
		_, err = e.svc.Create(ctx, dup)
		assert.True(t, errors.Is(err, book.ErrISBNDuplicate))

		_, after, err := e.svc.List(ctx, book.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("空ISBN视为未设置", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			b := book.NewBook("No ISBN", e.author.ID, e.publisher.ID)
			b.ISBN = strPtr("")
			created, err := e.svc.Create(ctx, b)
			require.NoError(t, err)
			assert.Nil(t, created.ISBN)
		}
	})

	t.Run("ISBN长度必须为13", func(t *testing.T) {
		b := book.NewBook("Short", e.author.ID, e.publisher.ID)
		b.ISBN = strPtr("12345")
		_, err := e.svc.Create(ctx, b)
		assert.True(t, errors.Is(err, book.ErrInvalidISBN))
	})

	t.Run("书名必填", func(t *testing.T) {
		_, err := e.svc.Create(ctx, book.NewBook("", e.author.ID, e.publisher.ID))
		assert.True(t, errors.Is(err, book.ErrInvalidTitle))
	})
}

func TestService_Update(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	b := book.NewBook("Persuasion", e.author.ID, e.publisher.ID)
	b.ISBN = strPtr("9780141439686")
	created, err := e.svc.Create(ctx, b)
	require.NoError(t, err)

	other := book.NewBook("Emma", e.author.ID, e.publisher.ID)
	other.ISBN = strPtr("9780141439587")
	_, err = e.svc.Create(ctx, other)
	require.NoError(t, err)

	t.Run("相同ISBN不触发重复检查", func(t *testing.T) {
		updated, err := e.svc.Update(ctx, created.ID, book.Patch{
			ISBN:  patch.Set(strPtr("9780141439686")),
			Title: patch.Set("Persuasion (Penguin Classics)"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Persuasion (Penguin Classics)", updated.Title)
	})

	t.Run("改成别人的ISBN", func(t *testing.T) {
		_, err := e.svc.Update(ctx, created.ID, book.Patch{ISBN: patch.Set(strPtr("9780141439587"))})
		assert.True(t, errors.Is(err, book.ErrISBNDuplicate))
	})

	t.Run("引用字段重新校验", func(t *testing.T) {
		_, err := e.svc.Update(ctx, created.ID, book.Patch{AuthorID: patch.Set(uintPtr(999))})
		assert.True(t, errors.Is(err, author.ErrAuthorNotFound))

		_, err = e.svc.Update(ctx, created.ID, book.Patch{PublisherID: patch.Set[*uint](nil)})
		assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound), "null视为不存在")
	})

	t.Run("未出现的字段保持不变", func(t *testing.T) {
		price := decimal.RequireFromString("15.00")
		updated, err := e.svc.Update(ctx, created.ID, book.Patch{Price: patch.Set(&price)})
		require.NoError(t, err)
		assert.Equal(t, "9780141439686", *updated.ISBN)
		assert.Equal(t, e.author.ID, *updated.AuthorID)
		assert.True(t, price.Equal(*updated.Price))
	})

	t.Run("清空可空字段", func(t *testing.T) {
		updated, err := e.svc.Update(ctx, created.ID, book.Patch{
			ISBN:  patch.Set[*string](nil),
			Price: patch.Set[*decimal.Decimal](nil),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.ISBN)
		assert.Nil(t, updated.Price)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := e.svc.Update(ctx, 999, book.Patch{Title: patch.Set("X")})
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})
}

func TestService_ListByParent(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	for _, title := range []string{"Emma", "Persuasion", "Mansfield Park"} {
		_, err := e.svc.Create(ctx, book.NewBook(title, e.author.ID, e.publisher.ID))
		require.NoError(t, err)
	}

	list, total, err := e.svc.ListByAuthor(ctx, e.author.ID, book.ListParams{Page: pagination.New(1, 2)})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 2)

	_, _, err = e.svc.ListByAuthor(ctx, 999, book.ListParams{})
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))

	_, total, err = e.svc.ListByPublisher(ctx, e.publisher.ID, book.ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	_, _, err = e.svc.ListByPublisher(ctx, 999, book.ListParams{})
	assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound))
}

func TestService_Delete(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	created, err := e.svc.Create(ctx, book.NewBook("Emma", e.author.ID, e.publisher.ID))
	require.NoError(t, err)

	require.NoError(t, e.svc.Delete(ctx, created.ID))
	err = e.svc.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, book.ErrBookNotFound))
}
