// Package circuitbreaker 熔断器
//
// 用于保护对外部依赖（RabbitMQ）的调用：依赖故障时快速失败，
// 不让每个业务请求都等待连接超时。
//
// 状态转换：
//
//	closed --连续失败达到阈值--> open --冷却时间到--> half_open
//	half_open --探测成功--> closed
//	half_open --探测失败--> open
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// ErrOpen 熔断器打开时返回
var ErrOpen = errors.New("circuit breaker is open")

// Options 熔断器参数
type Options struct {
	// FailureThreshold 连续失败多少次后打开，默认5
	FailureThreshold int
	// OpenTimeout 打开状态的冷却时间，默认30s
	OpenTimeout time.Duration
	// HalfOpenProbes 半开状态允许的并发探测数，默认1
	HalfOpenProbes int
	// OnStateChange 状态变化回调（日志、指标），在锁内调用，不能阻塞
	OnStateChange func(name string, from, to State)
}

// Breaker 熔断器，并发安全
type Breaker struct {
	name string
	opts Options
	now  func() time.Time

	mu         sync.Mutex
	state      State
	failures   int
	openedAt   time.Time
	probes     int
	generation uint64
}

// New 创建熔断器
func New(name string, opts Options) *Breaker {
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = 30 * time.Second
	}
	if opts.HalfOpenProbes <= 0 {
		opts.HalfOpenProbes = 1
	}
	return &Breaker{
		name: name,
		opts: opts,
		now:  time.Now,
	}
}

// Do 在熔断器保护下执行fn
// 熔断时不调用fn，直接返回ErrOpen；ctx取消导致的错误不计入失败
func (b *Breaker) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	generation, err := b.acquire()
	if err != nil {
		return err
	}

	err = fn(ctx)
	b.release(generation, err == nil || errors.Is(err, context.Canceled))
	return err
}

// State 当前状态
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentState()
}

func (b *Breaker) acquire() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.currentState() {
	case StateOpen:
		return 0, ErrOpen
	case StateHalfOpen:
		if b.probes >= b.opts.HalfOpenProbes {
			return 0, ErrOpen
		}
		b.probes++
	}
	return b.generation, nil
}

func (b *Breaker) release(generation uint64, success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.currentState()
	// 调用期间状态已经切换过，结果作废
	if generation != b.generation {
		return
	}

	if success {
		b.failures = 0
		if state == StateHalfOpen {
			b.setState(StateClosed)
		}
		return
	}

	b.failures++
	if state == StateHalfOpen || b.failures >= b.opts.FailureThreshold {
		b.setState(StateOpen)
	}
}

// currentState 冷却时间到后open → half_open，调用方持有锁
func (b *Breaker) currentState() State {
	if b.state == StateOpen && !b.now().Before(b.openedAt.Add(b.opts.OpenTimeout)) {
		b.setState(StateHalfOpen)
	}
	return b.state
}

func (b *Breaker) setState(to State) {
	from := b.state
	if from == to {
		return
	}

	b.state = to
	b.generation++
	b.failures = 0
	b.probes = 0
	if to == StateOpen {
		b.openedAt = b.now()
	}

	if b.opts.OnStateChange != nil {
		b.opts.OnStateChange(b.name, from, to)
	}
}
