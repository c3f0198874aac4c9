// Package rating 图书评分聚合
package rating

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	"github.com/xiebiao/bookstore-api/pkg/calc"
)

// Aggregator 根据所有用户评分重算图书的rating字段
//
// SetRating必须在事务中调用(ctx携带事务):
// 先锁定图书行,再读取全部评分并写回,同一本书的并发重算因此串行执行,
// 不会出现"读旧数据 → 覆盖新结果"的丢失更新
type Aggregator struct {
	books     book.Repository
	relations relation.Repository
}

// NewAggregator 创建评分聚合器
func NewAggregator(books book.Repository, relations relation.Repository) *Aggregator {
	return &Aggregator{
		books:     books,
		relations: relations,
	}
}

// SetRating 重算并持久化图书评分
func (a *Aggregator) SetRating(ctx context.Context, bookID uint) (book.Rating, error) {
	if _, err := a.books.LockByID(ctx, bookID); err != nil {
		return 0, err
	}

	rates, err := a.relations.ListRatesByBook(ctx, bookID)
	if err != nil {
		return 0, err
	}

	r, err := Mean(rates)
	if err != nil {
		return 0, err
	}

	if err := a.books.UpdateRating(ctx, bookID, r); err != nil {
		return 0, err
	}
	return r, nil
}

// Mean 计算平均分,四舍五入(half-up)到2位小数
// 空集合返回0.00;{5,5,4} → 4.67
//
// 全程整数运算: round(sum*100/n) = (sum*100*2 + n) / (2n)
func Mean(rates []int) (book.Rating, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	var sum int64
	var err error
	for _, rate := range rates {
		if sum, err = calc.Operations(sum, int64(rate), "+"); err != nil {
			return 0, err
		}
	}

	n := int64(len(rates))
	scaled, err := calc.Operations(sum, 200, "*")
	if err != nil {
		return 0, err
	}
	numerator, err := calc.Operations(scaled, n, "+")
	if err != nil {
		return 0, err
	}
	denominator, err := calc.Operations(n, 2, "*")
	if err != nil {
		return 0, err
	}
	return book.Rating(numerator / denominator), nil
}
