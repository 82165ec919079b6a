package author_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/testutil"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/patch"
)

func TestService_CreateAndUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	svc := author.NewService(store.NewAuthorRepository(db))
	ctx := context.Background()

	t.Run("名和姓必填", func(t *testing.T) {
		_, err := svc.Create(ctx, author.NewAuthor("", "Austen", nil, nil))
		assert.True(t, errors.Is(err, author.ErrNameRequired))

		_, err = svc.Create(ctx, author.NewAuthor("Jane", "   ", nil, nil))
		assert.True(t, errors.Is(err, author.ErrNameRequired))
	})

	bio := "Novelist"
	created, err := svc.Create(ctx, author.NewAuthor("Jane", "Austen", &bio, nil))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Books)
	assert.Equal(t, "Jane Austen", created.FullName())

	t.Run("只更新出现的字段", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, author.Patch{
			LastName:  patch.Set("Austen-Leigh"),
			Biography: patch.Set[*string](nil),
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.FirstName)
		assert.Equal(t, "Austen-Leigh", updated.LastName)
		assert.Nil(t, updated.Biography)
	})

	t.Run("更新不存在的作者", func(t *testing.T) {
		_, err := svc.Update(ctx, 404, author.Patch{FirstName: patch.Set("X")})
		assert.True(t, errors.Is(err, author.ErrAuthorNotFound))
	})

	t.Run("更新后校验", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, author.Patch{FirstName: patch.Set("")})
		assert.True(t, errors.Is(err, author.ErrNameRequired))
	})
}

func TestService_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	authors := store.NewAuthorRepository(db)
	publishers := store.NewPublisherRepository(db)
	books := store.NewBookRepository(db)
	svc := author.NewService(authors)
	bookSvc := book.NewService(books, authors, publishers, store.NewTxManager(db))
	ctx := context.Background()

	a, err := svc.Create(ctx, author.NewAuthor("Jane", "Austen", nil, nil))
	require.NoError(t, err)
	p := publisher.NewPublisher("Penguin", nil, nil)
	require.NoError(t, publishers.Create(ctx, p))
	b, err := bookSvc.Create(ctx, book.NewBook("Emma", a.ID, p.ID))
	require.NoError(t, err)

	err = svc.Delete(ctx, a.ID)
	assert.True(t, errors.Is(err, author.ErrAuthorHasBooks))
	assert.Equal(t, "Cannot delete author with books. Remove books first.", apperrors.GetAppError(err).Message)

	require.NoError(t, bookSvc.Delete(ctx, b.ID))
	require.NoError(t, svc.Delete(ctx, a.ID))

	_, err = svc.Get(ctx, a.ID)
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))

	err = svc.Delete(ctx, a.ID)
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))
}

// refusingRepo 模拟存储层拒绝删除(检查之后有新图书写入)
type refusingRepo struct {
	author.Repository
}

func (refusingRepo) FindByID(_ context.Context, id uint) (*author.Author, error) {
	return &author.Author{ID: id, FirstName: "Jane", LastName: "Austen"}, nil
}

func (refusingRepo) Delete(context.Context, uint) (bool, error) {
	return false, nil
}

func TestService_DeleteRefusedByStore(t *testing.T) {
	svc := author.NewService(refusingRepo{})

	err := svc.Delete(context.Background(), 1)
	assert.True(t, errors.Is(err, author.ErrDeleteFailed))
	assert.Equal(t, "Failed to delete author due to dependencies", apperrors.GetAppError(err).Message)
}

func TestService_ListNormalizesPage(t *testing.T) {
	db := testutil.NewDB(t)
	svc := author.NewService(store.NewAuthorRepository(db))
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, author.NewAuthor("First", "Last", nil, nil))
		require.NoError(t, err)
	}

	list, total, err := svc.List(ctx, author.ListParams{Page: pagination.New(0, -1)})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, list, pagination.DefaultPerPage)
}
