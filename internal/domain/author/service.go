package author

import (
	"context"
)

// Service 作者领域服务接口
type Service interface {
	// List 分页查询作者,Name非空时按名或姓模糊搜索
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)

	// Get 获取作者详情(含图书摘要)
	Get(ctx context.Context, id uint) (*Author, error)

	// Create 创建作者并返回重新加载的实体
	Create(ctx context.Context, author *Author) (*Author, error)

	// Update 局部更新
	Update(ctx context.Context, id uint, p Patch) (*Author, error)

	// Delete 删除作者
	// 业务规则:名下仍有图书时返回ErrAuthorHasBooks
	Delete(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	params.Page = params.Page.Normalize()
	return s.repo.List(ctx, params)
}

func (s *service) Get(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, author *Author) (*Author, error) {
	if err := author.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}

	// 重新加载(带Books摘要)
	return s.repo.FindByID(ctx, author.ID)
}

func (s *service) Update(ctx context.Context, id uint, p Patch) (*Author, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author.Apply(p)
	if err := author.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if author.HasBooks() {
		return ErrAuthorHasBooks
	}

	// 检查与删除之间可能有新图书写入，外键RESTRICT兜底
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDeleteFailed
	}

	return nil
}
