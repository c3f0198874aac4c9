package book

import (
	"context"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/permission"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// TxManager 事务管理接口(rdb.TxManager实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PatchFunc 延迟解析请求体,授权通过之后才调用
type PatchFunc func() (book.Patch, error)

// StaticPatch 已解析好的更新内容
func StaticPatch(p book.Patch) PatchFunc {
	return func() (book.Patch, error) { return p, nil }
}

// UpdateBookUseCase 更新图书用例(PUT全量/PATCH部分)
//
// 检查顺序:
// 1. 图书不存在 → 404(即使未登录)
// 2. 未登录 → 401
// 3. 不是owner也不是staff → 403
// 4. 请求体解析或字段校验失败 → 400,不做任何写入
//
// 整个流程在一个事务中执行,图书行被锁定,
// 授权检查与写入之间不会被并发的删除或修改插入
type UpdateBookUseCase struct {
	txManager   TxManager
	bookService book.Service
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(txManager TxManager, bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		txManager:   txManager,
		bookService: bookService,
	}
}

// Execute 执行更新;full=true为PUT语义
func (uc *UpdateBookUseCase) Execute(ctx context.Context, actor *permission.Actor, id uint, decode PatchFunc, full bool) (*book.BookView, error) {
	ctx, span := tracing.StartSpan(ctx, "book.Update")
	defer span.End()

	var view *book.BookView
	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookService.LockBook(ctx, id)
		if err != nil {
			return err
		}

		if err := permission.CheckBookWrite(actor, b); err != nil {
			return err
		}

		patch, err := decode()
		if err != nil {
			return err
		}

		view, err = uc.bookService.UpdateBook(ctx, b, patch, full)
		return err
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return view, nil
}
