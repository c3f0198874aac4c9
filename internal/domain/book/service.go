package book

import (
	"context"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 负责图书的业务规则校验与持久化
// 2. 授权(owner/staff)由应用层调用permission包完成,这里不关心调用者身份
type Service interface {
	// CreateBook 创建图书,owner为当前登录用户
	CreateBook(ctx context.Context, name string, price Price, authorName string, ownerID uint) (*BookView, error)

	// FindBook 根据ID获取图书实体(用于授权检查)
	FindBook(ctx context.Context, id uint) (*Book, error)

	// LockBook 在当前事务中锁定并返回图书,修改/删除前使用
	LockBook(ctx context.Context, id uint) (*Book, error)

	// GetBook 根据ID获取图书详情(含点赞数)
	GetBook(ctx context.Context, id uint) (*BookView, error)

	// ListBooks 按过滤/搜索/排序查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*BookView, error)

	// UpdateBook 校验并应用更新;full=true为PUT语义
	UpdateBook(ctx context.Context, b *Book, patch Patch, full bool) (*BookView, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, name string, price Price, authorName string, ownerID uint) (*BookView, error) {
	name = strings.TrimSpace(name)
	authorName = strings.TrimSpace(authorName)

	// 1. 业务规则校验(持久化之前)
	if err := (Patch{Name: &name, Price: &price, AuthorName: &authorName}).Validate(true); err != nil {
		return nil, err
	}
	if price < 0 || price > MaxPrice {
		return nil, ErrInvalidPrice
	}

	// 2. 创建并持久化
	b := NewBook(name, price, authorName, ownerID)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// 新书没有任何关系记录,点赞数为0
	return &BookView{Book: *b}, nil
}

// FindBook 根据ID获取图书
func (s *service) FindBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// LockBook 锁定图书行,ctx必须携带事务
func (s *service) LockBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.LockByID(ctx, id)
}

// GetBook 根据ID获取图书详情
func (s *service) GetBook(ctx context.Context, id uint) (*BookView, error) {
	return s.repo.FindViewByID(ctx, id)
}

// ListBooks 查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*BookView, error) {
	if params.Ordering.Field == "" {
		params.Ordering = DefaultOrdering
	}
	if !orderableFields[params.Ordering.Field] {
		return nil, ErrInvalidOrdering
	}
	params.Search = strings.TrimSpace(params.Search)
	return s.repo.List(ctx, params)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, b *Book, patch Patch, full bool) (*BookView, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.AuthorName != nil {
		author := strings.TrimSpace(*patch.AuthorName)
		patch.AuthorName = &author
	}

	// 1. 校验(失败时不做任何写入)
	if err := patch.Validate(full); err != nil {
		return nil, err
	}
	if patch.Price != nil && (*patch.Price < 0 || *patch.Price > MaxPrice) {
		return nil, ErrInvalidPrice
	}

	// 2. 应用并持久化
	b.Apply(patch)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	// 3. 重新读取,带上最新的点赞数
	return s.repo.FindViewByID(ctx, b.ID)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
