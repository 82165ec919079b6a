package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic（重复注册）

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, CatalogMutationsTotal)
	assert.NotNil(t, AuthAttemptsTotal)
	assert.NotNil(t, EventsPublishedTotal)
}

func TestObserveHTTPRequest(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"method": "GET", "path": "/api/v1/books/:id", "status": "200"}
	before := counterVecValue(t, HTTPRequestsTotal, labels)

	ObserveHTTPRequest("GET", "/api/v1/books/:id", 200, 20*time.Millisecond)
	ObserveHTTPRequest("GET", "/api/v1/books/:id", 200, 30*time.Millisecond)
	ObserveHTTPRequest("GET", "/api/v1/books/:id", 404, time.Millisecond)

	assert.Equal(t, before+2, counterVecValue(t, HTTPRequestsTotal, labels))

	var metric dto.Metric
	h := HTTPRequestDuration.With(map[string]string{"method": "GET", "path": "/api/v1/books/:id"})
	require.NoError(t, h.(prometheus.Histogram).Write(&metric))
	assert.GreaterOrEqual(t, metric.Histogram.GetSampleCount(), uint64(3))
}

func TestRecordCatalogMutation(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"entity": "author", "action": "deleted"}
	before := counterVecValue(t, CatalogMutationsTotal, labels)

	RecordCatalogMutation("author", "deleted")

	assert.Equal(t, before+1, counterVecValue(t, CatalogMutationsTotal, labels))
}

func TestRecordResults(t *testing.T) {
	RecordAuthAttempt("login", errors.New("bad password"))
	RecordAuthAttempt("login", nil)
	RecordEventPublished("catalog.book.created", nil)

	assert.GreaterOrEqual(t, counterVecValue(t, AuthAttemptsTotal, map[string]string{"action": "login", "result": "failure"}), 1.0)
	assert.GreaterOrEqual(t, counterVecValue(t, AuthAttemptsTotal, map[string]string{"action": "login", "result": "success"}), 1.0)
	assert.GreaterOrEqual(t, counterVecValue(t, EventsPublishedTotal, map[string]string{"routing_key": "catalog.book.created", "result": "success"}), 1.0)
}

func counterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	var metric dto.Metric
	counter := counterVec.With(labels)
	require.NoError(t, counter.(prometheus.Counter).Write(&metric))
	return metric.Counter.GetValue()
}
