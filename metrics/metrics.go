package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 结果标签取值
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeUpstream  = "upstream_error"
	OutcomeTransport = "transport_error"
	OutcomeStorage   = "storage_error"
	OutcomeConflict  = "conflict"
)

// Metrics 上游查询与注册表操作的指标集合
type Metrics struct {
	registry         *prometheus.Registry
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	registryOps      *prometheus.CounterVec
}

// New 创建独立的 prometheus registry 并注册全部指标
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leetcode_proxy",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "GraphQL requests issued to the upstream endpoint, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "leetcode_proxy",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of upstream GraphQL requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		registryOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leetcode_proxy",
			Subsystem: "registry",
			Name:      "operations_total",
			Help:      "Username registry operations, by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	reg.MustRegister(
		m.upstreamRequests,
		m.upstreamDuration,
		m.registryOps,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveUpstream 记录一次上游请求，m 为 nil 时忽略
func (m *Metrics) ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(operation, outcome).Inc()
	if elapsed > 0 {
		m.upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

// ObserveRegistry 记录一次注册表操作，m 为 nil 时忽略
func (m *Metrics) ObserveRegistry(operation, outcome string) {
	if m == nil {
		return
	}
	m.registryOps.WithLabelValues(operation, outcome).Inc()
}

// Registry 返回底层 prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler 暴露 /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
