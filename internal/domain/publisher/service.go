package publisher

import (
	"context"
)

// Service 出版社领域服务接口
type Service interface {
	List(ctx context.Context, params ListParams) ([]*Publisher, int64, error)
	Get(ctx context.Context, id uint) (*Publisher, error)
	Create(ctx context.Context, publisher *Publisher) (*Publisher, error)
	Update(ctx context.Context, id uint, p Patch) (*Publisher, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建出版社领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Publisher, int64, error) {
	params.Page = params.Page.Normalize()
	return s.repo.List(ctx, params)
}

func (s *service) Get(ctx context.Context, id uint) (*Publisher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, publisher *Publisher) (*Publisher, error) {
	if err := publisher.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, publisher); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, publisher.ID)
}

func (s *service) Update(ctx context.Context, id uint, p Patch) (*Publisher, error) {
	publisher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publisher.Apply(p)
	if err := publisher.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, publisher); err != nil {
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
