package telemetry

import (
	"shiftlist/config"
	"shiftlist/internal/core"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ProviderSet = wire.NewSet(NewTrace, NewMetric)

// Metric 未啟用時所有欄位皆為 nil，呼叫端需先判斷
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	ExportFilesTotal    *prometheus.CounterVec
	ExportFailTotal     *prometheus.CounterVec
	RateLimitedTotal    *prometheus.CounterVec
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	name := func(m core.MetricName) string { return config.App.Name + "_" + string(m) }

	return &Metric{
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{Name: name(core.MetricHttpRequestsTotal), Help: "Total received API requests"},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{Name: name(core.MetricHttpRequestDuration), Help: "API request duration (seconds)", Buckets: buckets},
			labelNames(core.MetricLabelEndpoint),
		),
		ExportFilesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{Name: name(core.MetricExportFilesTotal), Help: "Generated roster workbooks"},
			labelNames(core.MetricLabelWorkplace),
		),
		ExportFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{Name: name(core.MetricExportFailTotal), Help: "Failed roster exports"},
			labelNames(core.MetricLabelReason),
		),
		RateLimitedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{Name: name(core.MetricRateLimitTotal), Help: "Requests rejected by the export rate limiter"},
			labelNames(core.MetricLabelEndpoint),
		),
	}
}

func (m *Metric) IncExportFile(workplace string) {
	if m != nil && m.ExportFilesTotal != nil {
		m.ExportFilesTotal.WithLabelValues(workplace).Inc()
	}
}

func (m *Metric) IncExportFail(reason string) {
	if m != nil && m.ExportFailTotal != nil {
		m.ExportFailTotal.WithLabelValues(reason).Inc()
	}
}

func (m *Metric) IncRateLimited(endpoint string) {
	if m != nil && m.RateLimitedTotal != nil {
		m.RateLimitedTotal.WithLabelValues(endpoint).Inc()
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
