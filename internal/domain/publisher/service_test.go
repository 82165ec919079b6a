package publisher_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/testutil"
	"github.com/xiebiao/library/pkg/patch"
)

func TestService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := publisher.NewService(store.NewPublisherRepository(db))
	ctx := context.Background()

	year := 1935
	created, err := svc.Create(ctx, publisher.NewPublisher("Penguin", &year, nil))
	require.NoError(t, err)
	assert.Equal(t, 1935, *created.FoundingYear)

	t.Run("校验", func(t *testing.T) {
		_, err := svc.Create(ctx, publisher.NewPublisher(" ", nil, nil))
		assert.True(t, errors.Is(err, publisher.ErrNameRequired))

		_, err = svc.Create(ctx, publisher.NewPublisher(strings.Repeat("p", 101), nil, nil))
		assert.True(t, errors.Is(err, publisher.ErrNameTooLong))

		site := "https://" + strings.Repeat("w", 200)
		_, err = svc.Create(ctx, publisher.NewPublisher("Long Site", nil, &site))
		assert.True(t, errors.Is(err, publisher.ErrWebsiteTooLong))
	})

	t.Run("局部更新", func(t *testing.T) {
		site := "https://penguin.co.uk"
		updated, err := svc.Update(ctx, created.ID, publisher.Patch{Website: patch.Set(&site)})
		require.NoError(t, err)
		assert.Equal(t, "Penguin", updated.Name)
		assert.Equal(t, 1935, *updated.FoundingYear)
		assert.Equal(t, site, *updated.Website)
	})

	t.Run("不存在", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound))

		err = svc.Delete(ctx, 999)
		assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound))
	})
}

func TestService_DeleteKeepsBooks(t *testing.T) {
	db := testutil.NewDB(t)
	authors := store.NewAuthorRepository(db)
	publishers := store.NewPublisherRepository(db)
	books := store.NewBookRepository(db)
	svc := publisher.NewService(publishers)
	bookSvc := book.NewService(books, authors, publishers, store.NewTxManager(db))
	ctx := context.Background()

	a := author.NewAuthor("Jane", "Austen", nil, nil)
	require.NoError(t, authors.Create(ctx, a))
	p, err := svc.Create(ctx, publisher.NewPublisher("Penguin", nil, nil))
	require.NoError(t, err)
	b, err := bookSvc.Create(ctx, book.NewBook("Pride and Prejudice", a.ID, p.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	got, err := bookSvc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PublisherID)
	assert.Nil(t, got.Publisher)
}
