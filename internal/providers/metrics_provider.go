package providers

import (
	"fitheat/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncTokenRefreshes(result string)
	SetDaysScored(kind string, count int)
	Flush() error
}

type MetricsProvider struct {
	registry        *prometheus.Registry
	textfile        string
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	tokenRefreshes  *prometheus.CounterVec
	daysScored      *prometheus.GaugeVec
	lastRun         prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncTokenRefreshes(result string) {
	m.tokenRefreshes.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) SetDaysScored(kind string, count int) {
	m.daysScored.WithLabelValues(kind).Set(float64(count))
}

// Flush writes the registry in text exposition format for the node
// exporter textfile collector. A batch run has no scrape endpoint.
func (m *MetricsProvider) Flush() error {
	m.lastRun.SetToCurrentTime()
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

func httpStatusBucket(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &MetricsProvider{
		registry: reg,
		textfile: conf.Metrics.Textfile,

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fitheat_upstream_requests_total",
			Help: "Total number of requests sent to the Fitbit API",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fitheat_upstream_request_duration_seconds",
			Help:    "Fitbit API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "fitheat_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "fitheat_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		tokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fitheat_token_refreshes_total",
			Help: "Total number of bearer token refresh attempts",
		}, []string{"result"}),

		daysScored: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fitheat_days_scored",
			Help: "Number of days with a score in the last assembled series",
		}, []string{"kind"}),

		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fitheat_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncTokenRefreshes(_ string)                       {}
func (n *noopMetrics) SetDaysScored(_ string, _ int)                    {}
func (n *noopMetrics) Flush() error                                     { return nil }
