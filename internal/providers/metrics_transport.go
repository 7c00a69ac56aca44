package providers

import (
	"net/http"
	"strings"
	"time"
)

type metricsTransport struct {
	next    http.RoundTripper
	metrics MetricsProviderInterface
}

// MetricsTransport instruments outgoing requests. Transport failures are
// counted with status 0.
func MetricsTransport(metrics MetricsProviderInterface, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &metricsTransport{next: next, metrics: metrics}
}

func (t *metricsTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	duration := time.Since(start)

	endpoint := endpointLabel(r.URL.Path)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.metrics.IncRequestsTotal(endpoint, status)
	t.metrics.ObserveRequestDuration(endpoint, duration)
	return resp, err
}

// endpointLabel keeps user ids and dates out of label values.
func endpointLabel(path string) string {
	switch {
	case strings.Contains(path, "/oauth2/token"):
		return "token"
	case strings.Contains(path, "/sleep/"):
		return "sleep"
	case strings.Contains(path, "/active-zone-minutes/"):
		return "activity"
	default:
		return "other"
	}
}
