// Package messaging 领域事件发布的RabbitMQ适配
package messaging

import (
	"context"
	"errors"
	"log/slog"

	"github.com/xiebiao/bookstore-api/internal/domain/event"
	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/mq"
)

const breakerName = "event_publisher"

// brokerPublisher mq.Publisher的最小接口(测试中可替换)
type brokerPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventPublisher 实现event.Publisher,附带指标统计
// RabbitMQ连续失败时熔断,后续事件直接丢弃,不拖慢业务请求
type EventPublisher struct {
	broker  brokerPublisher
	breaker *circuitbreaker.Breaker
}

func newEventPublisher(broker brokerPublisher) *EventPublisher {
	metrics.BreakerState.WithLabelValues(breakerName).Set(float64(circuitbreaker.StateClosed))
	return &EventPublisher{
		broker: broker,
		breaker: circuitbreaker.New(breakerName, circuitbreaker.Options{
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				slog.Warn("熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
				metrics.BreakerState.WithLabelValues(name).Set(float64(to))
			},
		}),
	}
}

// NewEventPublisher 根据配置创建事件发布者
// mq.enabled=false时返回只记日志的发布者,返回的cleanup总是非nil
func NewEventPublisher(cfg *config.Config) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		slog.Info("消息队列未启用,领域事件只记录日志")
		return newEventPublisher(logBroker{}), func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			slog.Warn("关闭消息发布者失败", "error", err)
		}
	}
	return newEventPublisher(p), cleanup, nil
}

// Publish 发布事件
// 熔断期间返回circuitbreaker.ErrOpen,指标result记为rejected
func (p *EventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	err := p.breaker.Do(ctx, func(ctx context.Context) error {
		return p.broker.Publish(ctx, routingKey, payload)
	})
	switch {
	case err == nil:
		metrics.EventsPublishedTotal.WithLabelValues(routingKey, "success").Inc()
	case errors.Is(err, circuitbreaker.ErrOpen):
		metrics.EventsPublishedTotal.WithLabelValues(routingKey, "rejected").Inc()
	default:
		metrics.EventsPublishedTotal.WithLabelValues(routingKey, "failure").Inc()
	}
	return err
}

// logBroker 未启用消息队列时使用
type logBroker struct{}

func (logBroker) Publish(ctx context.Context, routingKey string, message interface{}) error {
	slog.DebugContext(ctx, "domain event", "routing_key", routingKey, "payload", message)
	return nil
}
