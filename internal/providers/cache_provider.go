package providers

import (
	"fitheat/internal/structures"
	"github.com/coocood/freecache"
)

// CacheProviderInterface holds upstream response bodies keyed by request URL.
type CacheProviderInterface interface {
	Get(url string) ([]byte, bool)
	Set(url string, body []byte)
}

// ResponseCache keeps fetched pages for cache.ttl so that repeated runs
// within that time skip the network. freecache refuses bodies larger than
// 1/1024 of its size; those are logged and simply not kept.
type ResponseCache struct {
	store      *freecache.Cache
	ttlSeconds int
	logger     Logger
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Debugf(TypeApp, "Response cache off, every page goes upstream")
		return &noopCache{}
	}

	ttlSeconds := max(int(conf.Cache.TTL.Seconds()), 1)
	logger.Debugf(TypeApp, "Response cache: %dMB (largest body %dKB), entries live %ds",
		conf.Cache.Size, conf.Cache.Size, ttlSeconds)

	return &ResponseCache{
		store:      freecache.NewCache(conf.Cache.Size << 20),
		ttlSeconds: ttlSeconds,
		logger:     logger,
	}
}

func (c *ResponseCache) Get(url string) ([]byte, bool) {
	body, err := c.store.Get([]byte(url))
	return body, err == nil
}

func (c *ResponseCache) Set(url string, body []byte) {
	if err := c.store.Set([]byte(url), body, c.ttlSeconds); err != nil {
		c.logger.Warnf(TypeApp, "Not caching %d byte response for %s: %s", len(body), url, err)
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
