package providers

import (
	"fitheat/internal/structures"
	"net/http"
	"time"
)

// NewHttpClientProvider builds the single client shared by the token
// refresher and the API client. A zero timeout means no timeout.
func NewHttpClientProvider(conf *structures.Config, metrics MetricsProviderInterface) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.IdleConnTimeout = 30 * time.Second

	return &http.Client{
		Timeout:   conf.Fitbit.Timeout,
		Transport: MetricsTransport(metrics, transport),
	}
}

func NewLocationProvider(conf *structures.Config) (*time.Location, error) {
	return time.LoadLocation(conf.Score.Timezone)
}
