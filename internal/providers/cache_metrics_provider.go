package providers

import "fitheat/internal/structures"

// countingCache reports every lookup as a hit or a miss.
type countingCache struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *countingCache) Get(url string) ([]byte, bool) {
	body, ok := c.inner.Get(url)
	if !ok {
		c.metrics.IncCacheMisses()
		return nil, false
	}
	c.metrics.IncCacheHits()
	return body, true
}

func (c *countingCache) Set(url string, body []byte) {
	c.inner.Set(url, body)
}

// NewInstrumentedCacheProvider leaves a disabled cache uncounted, otherwise
// every page would show up as a miss.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, off := inner.(*noopCache); off {
		return inner
	}
	return &countingCache{inner: inner, metrics: metrics}
}
