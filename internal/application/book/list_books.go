package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持价格精确过滤、name/author_name搜索、按字段排序
// 2. 读操作不需要登录
// 3. 不分页,返回全部匹配结果
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求
type ListBooksRequest struct {
	Price    *book.Price // 价格精确匹配
	Search   string      // 搜索关键词
	Ordering string      // 如 "price"、"-rating",空为按id升序
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) ([]*book.BookView, error) {
	ctx, span := tracing.StartSpan(ctx, "book.List")
	defer span.End()

	ordering, err := book.ParseOrdering(req.Ordering)
	if err != nil {
		return nil, err
	}

	views, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Price:    req.Price,
		Search:   req.Search,
		Ordering: ordering,
	})
	tracing.RecordError(span, err)
	return views, err
}
