package relation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/domain/permission"
	"github.com/xiebiao/bookstore-api/internal/domain/rating"
	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

// TxManager 事务管理接口(rdb.TxManager实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PatchFunc 延迟解析请求体,在404/401/403检查通过之后才调用
type PatchFunc func() (relation.Patch, error)

// StaticPatch 已解析好的更新内容
func StaticPatch(p relation.Patch) PatchFunc {
	return func() (relation.Patch, error) { return p, nil }
}

// UpdateRelationUseCase 更新当前用户与图书的关系(点赞、收藏、评分)
//
// 整个流程在一个事务中完成:
//  1. 锁定图书行(不存在 → 404)
//  2. 未登录 → 401
//  3. 查找当前用户的关系,不存在则新建;授权检查
//  4. 解析并校验请求体(失败 → 400,不做任何写入)
//  5. 应用更新并保存
//  6. 本次请求带了rate(包括撤销)时重算图书评分
//
// 同一本书的并发更新在第1步串行化,评分不会丢失更新。
// 事务提交后发布relation.updated和book.rated事件。
type UpdateRelationUseCase struct {
	txManager  TxManager
	books      book.Repository
	relations  relation.Repository
	aggregator *rating.Aggregator
	publisher  event.Publisher
}

// NewUpdateRelationUseCase 创建用例
func NewUpdateRelationUseCase(
	txManager TxManager,
	books book.Repository,
	relations relation.Repository,
	aggregator *rating.Aggregator,
	publisher event.Publisher,
) *UpdateRelationUseCase {
	return &UpdateRelationUseCase{
		txManager:  txManager,
		books:      books,
		relations:  relations,
		aggregator: aggregator,
		publisher:  publisher,
	}
}

// UpdateRelationResult 更新结果
type UpdateRelationResult struct {
	Relation *relation.Relation
	Created  bool         // 本次请求新建了关系
	Rating   *book.Rating // 重算后的评分,未重算时为nil
}

// Execute 执行更新
func (uc *UpdateRelationUseCase) Execute(ctx context.Context, actor *permission.Actor, bookID uint, decode PatchFunc) (*UpdateRelationResult, error) {
	ctx, span := tracing.StartSpan(ctx, "relation.Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("book.id", int64(bookID)))

	var result UpdateRelationResult
	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if _, err := uc.books.LockByID(ctx, bookID); err != nil {
			return err
		}

		if actor == nil {
			return apperrors.ErrUnauthenticated
		}

		rel, err := uc.relations.FindByUserAndBook(ctx, actor.UserID, bookID)
		switch {
		case errors.Is(err, relation.ErrRelationNotFound):
			rel = relation.NewRelation(actor.UserID, bookID)
			result.Created = true
		case err != nil:
			return err
		}

		if err := permission.CheckRelationWrite(actor, rel); err != nil {
			return err
		}

		patch, err := decode()
		if err != nil {
			return err
		}
		if err := patch.Validate(); err != nil {
			return err
		}

		rel.Apply(patch)
		if err := uc.relations.Save(ctx, rel); err != nil {
			return err
		}
		result.Relation = rel

		if patch.TouchesRate() {
			start := time.Now()
			r, err := uc.aggregator.SetRating(ctx, bookID)
			if err != nil {
				return err
			}
			metrics.RatingRecomputesTotal.Inc()
			metrics.RatingRecomputeDuration.Observe(time.Since(start).Seconds())
			result.Rating = &r
		}
		return nil
	})
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RelationUpdatesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	if result.Created {
		metrics.RelationUpdatesTotal.WithLabelValues("created").Inc()
	} else {
		metrics.RelationUpdatesTotal.WithLabelValues("updated").Inc()
	}

	uc.publishEvents(ctx, &result)
	return &result, nil
}

// publishEvents 发布领域事件,失败只记录日志
func (uc *UpdateRelationUseCase) publishEvents(ctx context.Context, result *UpdateRelationResult) {
	now := time.Now()
	rel := result.Relation

	if err := uc.publisher.Publish(ctx, event.RelationUpdated, event.RelationUpdatedEvent{
		UserID:      rel.UserID,
		BookID:      rel.BookID,
		Like:        rel.Like,
		InBookmarks: rel.InBookmarks,
		Rate:        rel.Rate,
		Created:     result.Created,
		OccurredAt:  now,
	}); err != nil {
		slog.WarnContext(ctx, "发布relation.updated事件失败", "book_id", rel.BookID, "error", err)
	}

	if result.Rating == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, event.BookRated, event.BookRatedEvent{
		BookID:     rel.BookID,
		Rating:     result.Rating.String(),
		OccurredAt: now,
	}); err != nil {
		slog.WarnContext(ctx, "发布book.rated事件失败", "book_id", rel.BookID, "error", err)
	}
}
