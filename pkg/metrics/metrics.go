// Package metrics 基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：请求总数、耗时、处理中请求数（由gin中间件记录）
//   - 业务指标：图书创建、关系更新、评分重算、事件发布
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值的维度（method、route、status），不要用user_id、book_id。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、route（路由模板，如/api/v1/book/:id/）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BooksCreatedTotal 图书创建总数
	BooksCreatedTotal prometheus.Counter

	// RelationUpdatesTotal 用户-图书关系更新总数
	// 标签：result（created/updated/failed）
	RelationUpdatesTotal *prometheus.CounterVec

	// RatingRecomputesTotal 评分重算次数
	RatingRecomputesTotal prometheus.Counter

	// RatingRecomputeDuration 评分重算耗时（加锁+读取+写回）
	RatingRecomputeDuration prometheus.Histogram

	// EventsPublishedTotal 领域事件发布总数
	// 标签：routing_key、result（success/failure）
	EventsPublishedTotal *prometheus.CounterVec

	// BreakerState 熔断器状态：0=closed 1=open 2=half_open
	// 标签：name
	BreakerState *prometheus.GaugeVec
)

// 导入即注册，业务代码可以直接使用指标变量
func init() {
	InitMetrics()
}

// InitMetrics 初始化所有指标（注册到默认Registry）
// 可重复调用，只有第一次生效
func InitMetrics() {
	once.Do(func() {
		register(promauto.With(prometheus.DefaultRegisterer))
	})
}

func register(f promauto.Factory) {
	HTTPRequestsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP请求总数",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP请求耗时（秒）",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInProgress = f.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "正在处理的HTTP请求数",
		},
	)

	BooksCreatedTotal = f.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "books_created_total",
			Help:      "图书创建总数",
		},
	)

	RelationUpdatesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relation_updates_total",
			Help:      "用户图书关系更新总数",
		},
		[]string{"result"},
	)

	RatingRecomputesTotal = f.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_recomputes_total",
			Help:      "图书评分重算次数",
		},
	)

	RatingRecomputeDuration = f.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rating_recompute_duration_seconds",
			Help:      "图书评分重算耗时（秒）",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	EventsPublishedTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "领域事件发布总数",
		},
		[]string{"routing_key", "result"},
	)

	BreakerState = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "熔断器状态（0=closed 1=open 2=half_open）",
		},
		[]string{"name"},
	)
}
