package messaging

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/xiebiao/bookstore-api/internal/domain/event"
)

// EventLogger 消费relation.updated、book.rated事件并写结构化日志
// 无法解析或未知routing key的消息直接确认丢弃，避免反复重新入队
type EventLogger struct {
	logger *slog.Logger
}

// NewEventLogger 创建事件日志消费者
func NewEventLogger(logger *slog.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// RoutingKeys 需要绑定的routing key
func (h *EventLogger) RoutingKeys() []string {
	return []string{event.RelationUpdated, event.BookRated}
}

// Handle 实现mq.Handler
func (h *EventLogger) Handle(ctx context.Context, routingKey string, body []byte) error {
	switch routingKey {
	case event.RelationUpdated:
		var e event.RelationUpdatedEvent
		if err := json.Unmarshal(body, &e); err != nil {
			h.discard(ctx, routingKey, err)
			return nil
		}
		h.logger.InfoContext(ctx, "relation updated",
			"user_id", e.UserID,
			"book_id", e.BookID,
			"like", e.Like,
			"in_bookmarks", e.InBookmarks,
			"rate", e.Rate,
			"created", e.Created,
			"occurred_at", e.OccurredAt,
		)

	case event.BookRated:
		var e event.BookRatedEvent
		if err := json.Unmarshal(body, &e); err != nil {
			h.discard(ctx, routingKey, err)
			return nil
		}
		h.logger.InfoContext(ctx, "book rated",
			"book_id", e.BookID,
			"rating", e.Rating,
			"occurred_at", e.OccurredAt,
		)

	default:
		h.logger.WarnContext(ctx, "unknown routing key", "routing_key", routingKey)
	}
	return nil
}

func (h *EventLogger) discard(ctx context.Context, routingKey string, err error) {
	h.logger.WarnContext(ctx, "malformed event dropped", "routing_key", routingKey, "error", err)
}
