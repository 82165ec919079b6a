package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/publisher"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装跨聚合的引用校验(作者、出版社必须存在)
// 2. 校验顺序固定: 作者 → 出版社 → ISBN
type Service interface {
	// List 分页查询，支持书名/作者/出版社过滤
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListByAuthor 作者名下图书，作者不存在返回ErrAuthorNotFound
	ListByAuthor(ctx context.Context, authorID uint, params ListParams) ([]*Book, int64, error)

	// ListByPublisher 出版社名下图书，出版社不存在返回ErrPublisherNotFound
	ListByPublisher(ctx context.Context, publisherID uint, params ListParams) ([]*Book, int64, error)

	Get(ctx context.Context, id uint) (*Book, error)

	// Create 创建图书
	// 业务规则:
	// - author_id必须指向已存在的作者
	// - publisher_id必须指向已存在的出版社
	// - ISBN(非空时)不能重复
	Create(ctx context.Context, book *Book) (*Book, error)

	// Update 局部更新，出现的引用字段重新校验
	Update(ctx context.Context, id uint, p Patch) (*Book, error)

	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo       Repository
	authors    author.Repository
	publishers publisher.Repository
	tx         Transactor
}

// NewService 创建图书领域服务
func NewService(repo Repository, authors author.Repository, publishers publisher.Repository, tx Transactor) Service {
	return &service{
		repo:       repo,
		authors:    authors,
		publishers: publishers,
		tx:         tx,
	}
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	params.Page = params.Page.Normalize()
	return s.repo.List(ctx, params)
}

func (s *service) ListByAuthor(ctx context.Context, authorID uint, params ListParams) ([]*Book, int64, error) {
	if err := s.checkAuthor(ctx, &authorID); err != nil {
		return nil, 0, err
	}
	params.AuthorID = &authorID
	return s.List(ctx, params)
}

func (s *service) ListByPublisher(ctx context.Context, publisherID uint, params ListParams) ([]*Book, int64, error) {
	if err := s.checkPublisher(ctx, &publisherID); err != nil {
		return nil, 0, err
	}
	params.PublisherID = &publisherID
	return s.List(ctx, params)
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, book *Book) (*Book, error) {
	book.ISBN = NormalizeISBN(book.ISBN)
	if err := book.Validate(); err != nil {
		return nil, err
	}

	// 引用校验与插入在同一事务中执行
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkAuthor(ctx, book.AuthorID); err != nil {
			return err
		}
		if err := s.checkPublisher(ctx, book.PublisherID); err != nil {
			return err
		}
		if err := s.checkISBN(ctx, book.ISBN); err != nil {
			return err
		}
		return s.repo.Create(ctx, book)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, book.ID)
}

func (s *service) Update(ctx context.Context, id uint, p Patch) (*Book, error) {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		book, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if p.AuthorID.Set {
			if err := s.checkAuthor(ctx, p.AuthorID.Value); err != nil {
				return err
			}
		}
		if p.PublisherID.Set {
			if err := s.checkPublisher(ctx, p.PublisherID.Value); err != nil {
				return err
			}
		}
		if p.ISBN.Set {
			isbn := NormalizeISBN(p.ISBN.Value)
			if !book.SameISBN(isbn) {
				if err := s.checkISBN(ctx, isbn); err != nil {
					return err
				}
			}
		}

		book.Apply(p)
		if err := book.Validate(); err != nil {
			return err
		}

		return s.repo.Update(ctx, book)
	})
	if err != nil {
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

// =========================================
// 辅助函数:引用校验
// =========================================

func (s *service) checkAuthor(ctx context.Context, id *uint) error {
	if id == nil {
		return author.ErrAuthorNotFound
	}
	ok, err := s.authors.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (s *service) checkPublisher(ctx context.Context, id *uint) error {
	if id == nil {
		return publisher.ErrPublisherNotFound
	}
	ok, err := s.publishers.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

func (s *service) checkISBN(ctx context.Context, isbn *string) error {
	if isbn == nil {
		return nil
	}
	taken, err := s.repo.ExistsByISBN(ctx, *isbn)
	if err != nil {
		return err
	}
	if taken {
		return ErrISBNDuplicate
	}
	return nil
}
