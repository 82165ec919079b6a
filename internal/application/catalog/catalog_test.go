package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/insight"
	"github.com/xiebiao/library/internal/domain/publisher"
	"github.com/xiebiao/library/internal/infrastructure/persistence/store"
	"github.com/xiebiao/library/internal/testutil"
	"github.com/xiebiao/library/pkg/pagination"
	"github.com/xiebiao/library/pkg/patch"
)

// capturedEvents 记录发布的事件
type capturedEvents struct {
	mu     sync.Mutex
	events []Event
}

func (c *capturedEvents) Publish(_ context.Context, e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *capturedEvents) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.events))
	for _, e := range c.events {
		keys = append(keys, e.RoutingKey())
	}
	return keys
}

type useCases struct {
	authors    *AuthorUseCase
	publishers *PublisherUseCase
	books      *BookUseCase
	insights   *InsightUseCase
	events     *capturedEvents
}

func newUseCases(t *testing.T) *useCases {
	db := testutil.NewDB(t)
	authorRepo := store.NewAuthorRepository(db)
	publisherRepo := store.NewPublisherRepository(db)
	bookRepo := store.NewBookRepository(db)

	authorSvc := author.NewService(authorRepo)
	publisherSvc := publisher.NewService(publisherRepo)
	bookSvc := book.NewService(bookRepo, authorRepo, publisherRepo, store.NewTxManager(db))
	insightSvc := insight.NewService(store.NewInsightRepository(db), bookRepo)

	events := &capturedEvents{}
	return &useCases{
		authors:    NewAuthorUseCase(authorSvc, bookSvc, events),
		publishers: NewPublisherUseCase(publisherSvc, bookSvc, events),
		books:      NewBookUseCase(bookSvc, insightSvc, events),
		insights:   NewInsightUseCase(insightSvc, events),
		events:     events,
	}
}

func TestCatalog_EventsOnMutations(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	a, err := uc.authors.Create(ctx, author.NewAuthor("Jane", "Austen", nil, nil))
	require.NoError(t, err)
	p, err := uc.publishers.Create(ctx, publisher.NewPublisher("Penguin", nil, nil))
	require.NoError(t, err)
	b, err := uc.books.Create(ctx, book.NewBook("Pride and Prejudice", a.ID, p.ID))
	require.NoError(t, err)
	i, err := uc.insights.Create(ctx, insight.NewInsight("Classic", "Witty", b.ID))
	require.NoError(t, err)

	_, err = uc.books.Update(ctx, b.ID, book.Patch{Title: patch.Set("Pride & Prejudice")})
	require.NoError(t, err)
	require.NoError(t, uc.insights.Delete(ctx, i.ID))
	require.NoError(t, uc.publishers.Delete(ctx, p.ID))

	assert.Equal(t, []string{
		"catalog.author.created",
		"catalog.publisher.created",
		"catalog.book.created",
		"catalog.insight.created",
		"catalog.book.updated",
		"catalog.insight.deleted",
		"catalog.publisher.deleted",
	}, uc.events.keys())
}

func TestCatalog_NoEventOnFailure(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	_, err := uc.books.Create(ctx, book.NewBook("Orphan", 1, 1))
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))

	err = uc.authors.Delete(ctx, 42)
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))

	assert.Empty(t, uc.events.keys())
}

func TestCatalog_PaginationMeta(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	a, err := uc.authors.Create(ctx, author.NewAuthor("Jane", "Austen", nil, nil))
	require.NoError(t, err)
	p, err := uc.publishers.Create(ctx, publisher.NewPublisher("Penguin", nil, nil))
	require.NoError(t, err)
	for _, title := range []string{"Emma", "Persuasion", "Sanditon", "Lady Susan", "Northanger Abbey"} {
		_, err := uc.books.Create(ctx, book.NewBook(title, a.ID, p.ID))
		require.NoError(t, err)
	}

	cases := []struct {
		page int
		want int
	}{
		{1, 2},
		{3, 1},
		{10, 0},
	}
	for _, tc := range cases {
		list, meta, err := uc.books.List(ctx, book.ListParams{Page: pagination.New(tc.page, 2)})
		require.NoError(t, err)
		assert.Len(t, list, tc.want)
		assert.Equal(t, pagination.Meta{Page: tc.page, PerPage: 2, Total: 5, Pages: 3}, meta)
	}

	list, meta, err := uc.authors.Books(ctx, a.ID, pagination.Page{})
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, pagination.DefaultPerPage, meta.PerPage)

	_, _, err = uc.publishers.Books(ctx, 999, pagination.Page{})
	assert.True(t, errors.Is(err, publisher.ErrPublisherNotFound))
}

type failingSender struct {
	calls int
}

func (s *failingSender) Publish(context.Context, string, interface{}) error {
	s.calls++
	return errors.New("channel closed")
}

type recordingSender struct {
	key     string
	message interface{}
}

func (s *recordingSender) Publish(_ context.Context, key string, message interface{}) error {
	s.key = key
	s.message = message
	return nil
}

func TestMQEventPublisher(t *testing.T) {
	t.Run("发送事件", func(t *testing.T) {
		sender := &recordingSender{}
		NewMQEventPublisher(sender).Publish(context.Background(), Event{Entity: EntityBook, Action: ActionDeleted, ID: 7})

		assert.Equal(t, "catalog.book.deleted", sender.key)
		assert.Equal(t, uint(7), sender.message.(Event).ID)
	})

	t.Run("发送失败不panic", func(t *testing.T) {
		sender := &failingSender{}
		NewMQEventPublisher(sender).Publish(context.Background(), Event{Entity: EntityAuthor, Action: ActionCreated, ID: 1})
		assert.Equal(t, 1, sender.calls)
	})
}

func TestMQEventPublisher_BreakerOpens(t *testing.T) {
	sender := &failingSender{}
	p := NewMQEventPublisher(sender)

	for i := 0; i < 8; i++ {
		p.Publish(context.Background(), Event{Entity: EntityBook, Action: ActionUpdated, ID: uint(i)})
	}

	assert.Equal(t, 5, sender.calls, "连续失败5次后熔断，不再调用broker")
}
