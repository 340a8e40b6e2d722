package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics counts read-through cache outcomes per resource kind.
type CacheMetrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
}

// NewCacheMetrics registers the cache counters on the provided registerer.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	if reg == nil {
		return &CacheMetrics{}
	}
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_cache_hits_total",
		Help: "Cache lookups served without a POS call.",
	}, []string{"resource"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_cache_misses_total",
		Help: "Cache lookups that required a POS fetch.",
	}, []string{"resource"})
	evictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kiosk_cache_evictions_total",
		Help: "Entries dropped after the POS rejected their token.",
	}, []string{"resource"})
	reg.MustRegister(hits, misses, evictions)
	return &CacheMetrics{
		hits:      hits,
		misses:    misses,
		evictions: evictions,
	}
}

func (c *CacheMetrics) IncHit(resource string) {
	if c == nil || c.hits == nil {
		return
	}
	c.hits.WithLabelValues(normalizeLabel(resource)).Inc()
}

func (c *CacheMetrics) IncMiss(resource string) {
	if c == nil || c.misses == nil {
		return
	}
	c.misses.WithLabelValues(normalizeLabel(resource)).Inc()
}

func (c *CacheMetrics) IncEviction(resource string) {
	if c == nil || c.evictions == nil {
		return
	}
	c.evictions.WithLabelValues(normalizeLabel(resource)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
