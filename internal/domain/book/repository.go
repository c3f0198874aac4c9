package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 查询方法返回BookView,点赞数由仓储在同一次查询中统计
// 3. 所有方法都必须从ctx中取事务(见rdb.TxManager),以便评分重算在事务内完成
type Repository interface {
	// Create 创建图书,回填ID
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindViewByID 根据ID查找图书及其点赞数
	FindViewByID(ctx context.Context, id uint) (*BookView, error)

	// List 按过滤、搜索、排序条件查询图书及点赞数
	List(ctx context.Context, params ListParams) ([]*BookView, error)

	// Update 更新图书基本信息(不包括rating)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// LockByID 悲观锁查询图书(SELECT ... FOR UPDATE)
	// 评分聚合器用它串行化同一本书的并发重算
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateRating 只更新rating字段
	UpdateRating(ctx context.Context, id uint, rating Rating) error
}

// ListParams 列表查询参数
type ListParams struct {
	Price    *Price   // 价格精确匹配,nil表示不过滤
	Search   string   // 在name、author_name中做不区分大小写的子串匹配
	Ordering Ordering // 排序规则,零值等同DefaultOrdering
}
