package user

import (
	"context"
)

// Repository 用户仓储接口
// 具体实现在infrastructure/persistence/rdb层
type Repository interface {
	// Create 创建用户
	// 注意：如果用户名已存在，应返回errors.ErrUsernameDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername 根据用户名查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByUsername(ctx context.Context, username string) (*User, error)
}
