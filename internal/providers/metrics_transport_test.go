package providers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            int
	misses          int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *mockMetrics) IncCacheHits()                                    { m.hits++ }
func (m *mockMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *mockMetrics) IncTokenRefreshes(_ string)                       {}
func (m *mockMetrics) SetDaysScored(_ string, _ int)                    {}
func (m *mockMetrics) Flush() error                                     { return nil }

type failingTransport struct{}

func (f failingTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestMetricsTransport_CapturesStatusAndEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	metrics := &mockMetrics{}
	client := &http.Client{Transport: MetricsTransport(metrics, nil)}

	resp, err := client.Get(srv.URL + "/1.2/user/ABC/sleep/date/2024-01-01/2024-03-31.json")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, metrics.requestCalls)
	assert.Equal(t, "sleep", metrics.requestEndpoint)
	assert.Equal(t, http.StatusTooManyRequests, metrics.requestStatus)
	assert.Equal(t, 1, metrics.durationCalls)
}

func TestMetricsTransport_CountsTransportErrors(t *testing.T) {
	metrics := &mockMetrics{}
	client := &http.Client{Transport: MetricsTransport(metrics, failingTransport{})}

	_, err := client.Get("http://fitbit.invalid/oauth2/token")
	assert.Error(t, err)
	assert.Equal(t, "token", metrics.requestEndpoint)
	assert.Equal(t, 0, metrics.requestStatus)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "activity", endpointLabel("/1/user/-/activities/active-zone-minutes/date/2024-01-01/2024-12-31.json"))
	assert.Equal(t, "other", endpointLabel("/1/user/-/profile.json"))
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "error", httpStatusBucket(0))
	assert.Equal(t, "2xx", httpStatusBucket(204))
	assert.Equal(t, "4xx", httpStatusBucket(401))
	assert.Equal(t, "5xx", httpStatusBucket(503))
}
