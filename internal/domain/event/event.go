// Package event 领域事件定义
// 事件在事务提交之后发布,发布失败只记录日志,不影响已提交的业务结果
package event

import (
	"context"
	"time"
)

// Routing key
const (
	RelationUpdated = "relation.updated"
	BookRated       = "book.rated"
)

// Publisher 事件发布接口(infrastructure/messaging实现)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// RelationUpdatedEvent 用户-图书关系已更新
type RelationUpdatedEvent struct {
	UserID      uint      `json:"user_id"`
	BookID      uint      `json:"book_id"`
	Like        bool      `json:"like"`
	InBookmarks bool      `json:"in_bookmarks"`
	Rate        *int      `json:"rate"`
	Created     bool      `json:"created"` // 本次请求新建了关系记录
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookRatedEvent 图书评分已重算
type BookRatedEvent struct {
	BookID     uint      `json:"book_id"`
	Rating     string    `json:"rating"` // "4.67"
	OccurredAt time.Time `json:"occurred_at"`
}
