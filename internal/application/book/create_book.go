package book

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/permission"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. owner总是当前登录用户,客户端不能指定
// 2. rating初始为0.00,客户端不能设置
// 3. 业务规则校验由领域服务负责
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建图书请求
type CreateBookRequest struct {
	Name       string
	Price      book.Price
	AuthorName string
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, actor *permission.Actor, req CreateBookRequest) (*book.BookView, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	ctx, span := tracing.StartSpan(ctx, "book.Create")
	defer span.End()

	view, err := uc.bookService.CreateBook(ctx, req.Name, req.Price, req.AuthorName, actor.UserID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("book.id", int64(view.ID)))
	metrics.BooksCreatedTotal.Inc()
	slog.InfoContext(ctx, "图书已创建", "book_id", view.ID, "owner_id", actor.UserID)

	return view, nil
}
