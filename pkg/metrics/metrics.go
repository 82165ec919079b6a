// Package metrics 基于Prometheus的指标收集
//
// 指标分组：
//   - HTTP：请求总数、耗时、并发数（由middleware.Metrics采集）
//   - 目录：作者/出版社/图书/书评的增删改次数
//   - 认证：注册、登录、刷新结果
//   - 消息：目录事件发布结果
//
// 所有指标注册到prometheus默认Registry，通过/metrics暴露。
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec
	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// CatalogMutationsTotal 目录写操作次数（entity: author|publisher|book|insight）
	CatalogMutationsTotal *prometheus.CounterVec

	// AuthAttemptsTotal 认证相关操作结果
	AuthAttemptsTotal *prometheus.CounterVec

	// EventsPublishedTotal 目录事件发布结果
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有指标（可重复调用）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_mutations_total",
				Help: "目录写操作次数",
			},
			[]string{"entity", "action"},
		)

		AuthAttemptsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_attempts_total",
				Help: "认证操作次数",
			},
			[]string{"action", "result"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_events_published_total",
				Help: "目录事件发布次数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// ObserveHTTPRequest 记录一次HTTP请求
// path使用路由模板（如/api/v1/books/:id），避免标签基数爆炸
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordCatalogMutation 记录目录写操作
func RecordCatalogMutation(entity, action string) {
	InitMetrics()
	CatalogMutationsTotal.WithLabelValues(entity, action).Inc()
}

// RecordAuthAttempt 记录认证操作
func RecordAuthAttempt(action string, err error) {
	InitMetrics()
	AuthAttemptsTotal.WithLabelValues(action, result(err)).Inc()
}

// RecordEventPublished 记录事件发布结果
func RecordEventPublished(routingKey string, err error) {
	InitMetrics()
	EventsPublishedTotal.WithLabelValues(routingKey, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
