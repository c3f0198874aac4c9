package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/permission"
)

// DeleteBookUseCase 删除图书用例,检查顺序同UpdateBookUseCase
type DeleteBookUseCase struct {
	txManager   TxManager
	bookService book.Service
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(txManager TxManager, bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		txManager:   txManager,
		bookService: bookService,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, actor *permission.Actor, id uint) error {
	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		b, err := uc.bookService.LockBook(ctx, id)
		if err != nil {
			return err
		}

		if err := permission.CheckBookWrite(actor, b); err != nil {
			return err
		}

		return uc.bookService.DeleteBook(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "图书已删除", "book_id", id, "user_id", actor.UserID)
	return nil
}
