package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/domain/user"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/testutil"
	"github.com/xiebiao/library/pkg/pagination"
)

type fixture struct {
	db         *gorm.DB
	authors    author.Repository
	publishers publisher.Repository
	books      book.Repository
	insights   insight.Repository
	users      user.Repository
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		db:         db,
		authors:    store.NewAuthorRepository(db),
		publishers: store.NewPublisherRepository(db),
		books:      store.NewBookRepository(db),
		insights:   store.NewInsightRepository(db),
		users:      store.NewUserRepository(db),
	}
}

func (f *fixture) author(t *testing.T, first, last string) *author.Author {
	a := author.NewAuthor(first, last, nil, nil)
	require.NoError(t, f.authors.Create(context.Background(), a))
	return a
}

func (f *fixture) publisher(t *testing.T, name string) *publisher.Publisher {
	p := publisher.NewPublisher(name, nil, nil)
	require.NoError(t, f.publishers.Create(context.Background(), p))
	return p
}

func (f *fixture) book(t *testing.T, title string, authorID, publisherID uint, isbn string) *book.Book {
	b := book.NewBook(title, authorID, publisherID)
	b.ISBN = book.NormalizeISBN(&isbn)
	require.NoError(t, f.books.Create(context.Background(), b))
	return b
}

func TestAuthorRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bio := "English novelist"
	birth := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
	a := author.NewAuthor("Jane", "Austen", &bio, &birth)
	require.NoError(t, f.authors.Create(ctx, a))
	assert.NotZero(t, a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	t.Run("FindByID预加载图书", func(t *testing.T) {
		p := f.publisher(t, "Penguin")
		b := f.book(t, "Pride and Prejudice", a.ID, p.ID, "")

		got, err := f.authors.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane", got.FirstName)
		assert.Equal(t, "English novelist", *got.Biography)
		assert.Equal(t, "1775-12-16", got.BirthDate.Format("2006-01-02"))
		require.Len(t, got.Books, 1)
		assert.Equal(t, author.BookSummary{ID: b.ID, Title: "Pride and Prejudice"}, got.Books[0])
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := f.authors.FindByID(ctx, 9999)
		assert.True(t, errors.Is(err, author.ErrAuthorNotFound))

		exists, err := f.authors.Exists(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Update可清空字段", func(t *testing.T) {
		got, err := f.authors.FindByID(ctx, a.ID)
		require.NoError(t, err)
		got.Biography = nil
		got.LastName = "Austen-Leigh"
		require.NoError(t, f.authors.Update(ctx, got))

		again, err := f.authors.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Nil(t, again.Biography)
		assert.Equal(t, "Austen-Leigh", again.LastName)
		assert.Equal(t, got.CreatedAt.Unix(), again.CreatedAt.Unix())
	})

	t.Run("有图书时外键拒绝删除", func(t *testing.T) {
		ok, err := f.authors.Delete(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		exists, err := f.authors.Exists(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("无图书时删除成功", func(t *testing.T) {
		lonely := f.author(t, "Emily", "Bronte")
		ok, err := f.authors.Delete(ctx, lonely.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = f.authors.Delete(ctx, lonely.ID)
		require.NoError(t, err)
		assert.False(t, ok, "重复删除影响0行")
	})
}

func TestAuthorRepository_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.author(t, "Jane", "Austen")
	f.author(t, "Charlotte", "Bronte")
	f.author(t, "Emily", "Bronte")
	f.author(t, "Anne", "Bronte")
	f.author(t, "Mary", "JANEWAY")

	t.Run("分页", func(t *testing.T) {
		cases := []struct {
			page, perPage int
			want          int
		}{
			{1, 2, 2},
			{3, 2, 1},
			{10, 2, 0},
			{1 << 62, 4, 0},
		}
		for _, tc := range cases {
			list, total, err := f.authors.List(ctx, author.ListParams{Page: pagination.New(tc.page, tc.perPage)})
			require.NoError(t, err)
			assert.EqualValues(t, 5, total)
			assert.Len(t, list, tc.want, "page=%d", tc.page)
		}
	})

	t.Run("按id升序", func(t *testing.T) {
		list, _, err := f.authors.List(ctx, author.ListParams{Page: pagination.New(1, 10)})
		require.NoError(t, err)
		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].ID, list[i].ID)
		}
	})

	t.Run("名或姓不区分大小写匹配", func(t *testing.T) {
		list, total, err := f.authors.List(ctx, author.ListParams{Name: "jane", Page: pagination.New(1, 10)})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, "Jane", list[0].FirstName)
		assert.Equal(t, "JANEWAY", list[1].LastName)

		_, total, err = f.authors.List(ctx, author.ListParams{Name: "BRON", Page: pagination.New(1, 2)})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total, "total是过滤后的总数")
	})
}

func TestPublisherRepository_DeleteNullsBooks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.author(t, "Jane", "Austen")
	p := f.publisher(t, "Penguin")
	b := f.book(t, "Pride and Prejudice", a.ID, p.ID, "")

	got, err := f.publishers.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Books, 1)

	require.NoError(t, f.publishers.Delete(ctx, p.ID))

	after, err := f.books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, after.PublisherID)
	assert.Nil(t, after.Publisher)
	require.NotNil(t, after.Author)
	assert.Equal(t, "Austen", after.Author.LastName)

	err = f.publishers.Delete(ctx, p.ID)
	assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound))
}

func TestPublisherRepository_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.publisher(t, "Penguin Books")
	f.publisher(t, "Vintage")

	list, total, err := f.publishers.List(ctx, publisher.ListParams{Name: "PENGUIN", Page: pagination.New(1, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Penguin Books", list[0].Name)
	assert.Empty(t, list[0].Books)
}

func TestBookRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.author(t, "Jane", "Austen")
	p := f.publisher(t, "Penguin")

	price := decimal.RequireFromString("12.50")
	b := book.NewBook("Pride and Prejudice", a.ID, p.ID)
	isbn := "9780141439518"
	b.ISBN = &isbn
	b.Price = &price
	require.NoError(t, f.books.Create(ctx, b))

	t.Run("FindByID预加载作者和出版社", func(t *testing.T) {
		got, err := f.books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, &book.AuthorSummary{ID: a.ID, FirstName: "Jane", LastName: "Austen"}, got.Author)
		assert.Equal(t, &book.PublisherSummary{ID: p.ID, Name: "Penguin"}, got.Publisher)
		assert.True(t, price.Equal(*got.Price))
	})

	t.Run("两次读取结果一致", func(t *testing.T) {
		first, err := f.books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		second, err := f.books.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("ISBN唯一索引", func(t *testing.T) {
		exists, err := f.books.ExistsByISBN(ctx, isbn)
		require.NoError(t, err)
		assert.True(t, exists)

		dup := book.NewBook("Copy", a.ID, p.ID)
		dup.ISBN = &isbn
		err = f.books.Create(ctx, dup)
		assert.True(t, errors.Is(err, book.ErrISBNDuplicate))

		_, total, err := f.books.List(ctx, book.ListParams{Page: pagination.New(1, 10)})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("多个NULL ISBN不冲突", func(t *testing.T) {
		f.book(t, "Emma", a.ID, p.ID, "")
		f.book(t, "Persuasion", a.ID, p.ID, "")
	})

	t.Run("过滤条件", func(t *testing.T) {
		other := f.author(t, "Charles", "Dickens")
		f.book(t, "Great Expectations", other.ID, p.ID, "")

		_, total, err := f.books.List(ctx, book.ListParams{AuthorID: &a.ID, Page: pagination.New(1, 10)})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		list, total, err := f.books.List(ctx, book.ListParams{Title: "great", Page: pagination.New(1, 10)})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "Dickens", list[0].Author.LastName)

		_, total, err = f.books.List(ctx, book.ListParams{PublisherID: &p.ID, Page: pagination.New(1, 10)})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
	})

	t.Run("删除图书后书评book_id置NULL", func(t *testing.T) {
		victim := f.book(t, "Sanditon", a.ID, p.ID, "")
		in := insight.NewInsight("Unfinished", "Austen's last work", victim.ID)
		require.NoError(t, f.insights.Create(ctx, in))

		require.NoError(t, f.books.Delete(ctx, victim.ID))

		got, err := f.insights.FindByID(ctx, in.ID)
		require.NoError(t, err)
		assert.Nil(t, got.BookID)
		assert.Nil(t, got.Book)

		err = f.books.Delete(ctx, victim.ID)
		assert.True(t, errors.Is(err, book.ErrBookNotFound))
	})
}

func TestInsightRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.author(t, "Jane", "Austen")
	p := f.publisher(t, "Penguin")
	b1 := f.book(t, "Emma", a.ID, p.ID, "")
	b2 := f.book(t, "Persuasion", a.ID, p.ID, "")

	for _, id := range []uint{b1.ID, b1.ID, b2.ID} {
		require.NoError(t, f.insights.Create(ctx, insight.NewInsight("Review", "Lovely", id)))
	}

	list, total, err := f.insights.List(ctx, insight.ListParams{BookID: &b1.ID, Page: pagination.New(1, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, &insight.BookSummary{ID: b1.ID, Title: "Emma"}, list[0].Book)

	got := list[0]
	got.Title = "Updated"
	require.NoError(t, f.insights.Update(ctx, got))
	again, err := f.insights.FindByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", again.Title)

	require.NoError(t, f.insights.Delete(ctx, got.ID))
	_, err = f.insights.FindByID(ctx, got.ID)
	assert.True(t, errors.Is(err, insight.ErrInsightNotFound))
}

func TestUserRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := user.NewUser("u1", "u1@example.com", "hash")
	require.NoError(t, f.users.Create(ctx, u))
	assert.NotZero(t, u.ID)

	t.Run("唯一索引冲突区分字段", func(t *testing.T) {
		err := f.users.Create(ctx, user.NewUser("u1", "other@example.com", "hash"))
		assert.True(t, errors.Is(err, user.ErrUsernameDuplicate))

		err = f.users.Create(ctx, user.NewUser("u2", "u1@example.com", "hash"))
		assert.True(t, errors.Is(err, user.ErrEmailDuplicate))
	})

	t.Run("查询", func(t *testing.T) {
		got, err := f.users.FindByEmail(ctx, "u1@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.Username)
		assert.True(t, got.IsActive)

		_, err = f.users.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, user.ErrUserNotFound))

		taken, err := f.users.ExistsByUsername(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("更新密码", func(t *testing.T) {
		got, err := f.users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		got.ChangePassword("new-hash")
		require.NoError(t, f.users.Update(ctx, got))

		again, err := f.users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", again.Password)
	})
}

func TestTxManager_Rollback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tx := store.NewTxManager(f.db)

	sentinel := errors.New("boom")
	err := tx.Transaction(ctx, func(ctx context.Context) error {
		a := author.NewAuthor("Temp", "Author", nil, nil)
		if err := f.authors.Create(ctx, a); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	_, total, err := f.authors.List(ctx, author.ListParams{Page: pagination.New(1, 10)})
	require.NoError(t, err)
	assert.Zero(t, total, "事务回滚后没有记录")

	err = tx.Transaction(ctx, func(ctx context.Context) error {
		return f.authors.Create(ctx, author.NewAuthor("Kept", "Author", nil, nil))
	})
	require.NoError(t, err)

	_, total, err = f.authors.List(ctx, author.ListParams{Page: pagination.New(1, 10)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
