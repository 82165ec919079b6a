// Package circuitbreaker 熔断器
//
// 三种状态：
// - CLOSED：正常放行，统计连续失败次数
// - OPEN：快速失败，不调用下游，Timeout后进入HALF_OPEN
// - HALF_OPEN：放行有限的探测请求，成功则关闭，失败则重新打开
package circuitbreaker

import (
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
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开，请求未执行
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	MaxFailures uint32        // CLOSED状态下连续失败多少次打开熔断器
	Timeout     time.Duration // OPEN状态持续时间
	MaxProbes   uint32        // HALF_OPEN状态允许的探测请求数

	// OnStateChange 状态切换回调（日志、指标），在锁内调用，不要阻塞
	OnStateChange func(name string, from, to State)
}

// Breaker 熔断器，并发安全
type Breaker struct {
	name string
	cfg  Config
	now  func() time.Time

	mu                  sync.Mutex
	state               State
	generation          uint64 // 每次状态切换递增，丢弃过期请求的结果
	consecutiveFailures uint32
	probes              uint32
	openUntil           time.Time
}

// New 创建熔断器，零值配置使用默认值（5次失败、30秒、1个探测请求）
func New(name string, cfg Config) *Breaker {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxProbes == 0 {
		cfg.MaxProbes = 1
	}
	return &Breaker{name: name, cfg: cfg, now: time.Now}
}

// Execute 在熔断器保护下执行fn
// 熔断器打开时直接返回ErrOpenState，fn不会被调用
func (b *Breaker) Execute(fn func() error) error {
	generation, err := b.before()
	if err != nil {
		return err
	}

	err = fn()
	b.after(generation, err == nil)
	return err
}

// State 当前状态
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current()
}

func (b *Breaker) before() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.current() {
	case StateOpen:
		return b.generation, ErrOpenState
	case StateHalfOpen:
		if b.probes >= b.cfg.MaxProbes {
			return b.generation, ErrOpenState
		}
		b.probes++
	}
	return b.generation, nil
}

func (b *Breaker) after(generation uint64, success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.current()
	if generation != b.generation {
		return
	}

	if success {
		b.consecutiveFailures = 0
		if state == StateHalfOpen {
			b.setState(StateClosed)
		}
		return
	}

	b.consecutiveFailures++
	switch state {
	case StateClosed:
		if b.consecutiveFailures >= b.cfg.MaxFailures {
			b.setState(StateOpen)
		}
	case StateHalfOpen:
		b.setState(StateOpen)
	}
}

// current 处理OPEN超时，调用方持有锁
func (b *Breaker) current() State {
	if b.state == StateOpen && !b.now().Before(b.openUntil) {
		b.setState(StateHalfOpen)
	}
	return b.state
}

func (b *Breaker) setState(to State) {
	if b.state == to {
		return
	}
	from := b.state
	b.state = to
	b.generation++
	b.consecutiveFailures = 0
	b.probes = 0
	if to == StateOpen {
		b.openUntil = b.now().Add(b.cfg.Timeout)
	}

	if b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(b.name, from, to)
	}
}
