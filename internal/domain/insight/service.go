package insight

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// Service 书评领域服务接口
type Service interface {
	List(ctx context.Context, params ListParams) ([]*Insight, int64, error)
	// ListByBook 图书的书评，图书不存在返回ErrBookNotFound
	ListByBook(ctx context.Context, bookID uint, params ListParams) ([]*Insight, int64, error)
	Get(ctx context.Context, id uint) (*Insight, error)
	Create(ctx context.Context, insight *Insight) (*Insight, error)
	Update(ctx context.Context, id uint, p Patch) (*Insight, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo  Repository
	books book.Repository
}

// NewService 创建书评领域服务
func NewService(repo Repository, books book.Repository) Service {
	return &service{repo: repo, books: books}
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Insight, int64, error) {
	params.Page = params.Page.Normalize()
	return s.repo.List(ctx, params)
}

func (s *service) ListByBook(ctx context.Context, bookID uint, params ListParams) ([]*Insight, int64, error) {
	if err := s.checkBook(ctx, &bookID); err != nil {
		return nil, 0, err
	}
	params.BookID = &bookID
	return s.List(ctx, params)
}

func (s *service) Get(ctx context.Context, id uint) (*Insight, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, insight *Insight) (*Insight, error) {
	if err := insight.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkBook(ctx, insight.BookID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, insight); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, insight.ID)
}

func (s *service) Update(ctx context.Context, id uint, p Patch) (*Insight, error) {
	insight, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.BookID.Set {
		if err := s.checkBook(ctx, p.BookID.Value); err != nil {
			return nil, err
		}
	}

	insight.Apply(p)
	if err := insight.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, insight); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) checkBook(ctx context.Context, id *uint) error {
	if id == nil {
		return book.ErrBookNotFound
	}
	ok, err := s.books.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return book.ErrBookNotFound
	}
	return nil
}
