package relation

import (
	"context"
)

// Repository 用户-图书关系仓储接口
type Repository interface {
	// FindByUserAndBook 查找关系,不存在返回ErrRelationNotFound
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Relation, error)

	// Save 新建或更新(ID为0时新建,回填ID)
	Save(ctx context.Context, r *Relation) error

	// ListRatesByBook 返回某本书所有非空评分
	ListRatesByBook(ctx context.Context, bookID uint) ([]int, error)

	// CountLikes 统计某本书like=true的关系数
	CountLikes(ctx context.Context, bookID uint) (int64, error)
}
