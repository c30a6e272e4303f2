package iostore

import (
	"sync"
	"time"

	"github.com/shipshapehq/shipshape/internal/contract"
	"github.com/shipshapehq/shipshape/schema"
)

// ClusterCache is the in-process holder for the population clustering. An
// absent entry reads as stale so the first caller always builds.
type ClusterCache struct {
	mu         sync.RWMutex
	value      *schema.ClusterAnalysis
	setAt      time.Time
	staleAfter time.Duration
}

var _ contract.AnalysisCache = &ClusterCache{} // Compile-time check

// NewClusterCache creates a cluster cache with the given staleness window.
// A non-positive window falls back to the default.
func NewClusterCache(staleAfter time.Duration) *ClusterCache {
	if staleAfter <= 0 {
		staleAfter = contract.DefaultStaleAfter
	}
	return &ClusterCache{staleAfter: staleAfter}
}

// Get returns the cached analysis, or nil when absent.
func (c *ClusterCache) Get() *schema.ClusterAnalysis {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the cached analysis and resets the staleness window.
func (c *ClusterCache) Set(analysis *schema.ClusterAnalysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = analysis
	c.setAt = analysis.LastUpdated
}

// IsStale reports whether the entry is absent or past its window.
func (c *ClusterCache) IsStale(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value == nil || now.Sub(c.setAt) >= c.staleAfter
}

// HistogramCache is the in-process holder for the hour histogram, with the
// same lifecycle as ClusterCache.
type HistogramCache struct {
	mu         sync.RWMutex
	value      *schema.HourHistogram
	setAt      time.Time
	staleAfter time.Duration
}

var _ contract.HistogramCache = &HistogramCache{} // Compile-time check

// NewHistogramCache creates a histogram cache with the given staleness window.
// A non-positive window falls back to the default.
func NewHistogramCache(staleAfter time.Duration) *HistogramCache {
	if staleAfter <= 0 {
		staleAfter = contract.DefaultStaleAfter
	}
	return &HistogramCache{staleAfter: staleAfter}
}

// Get returns the cached histogram, or nil when absent.
func (c *HistogramCache) Get() *schema.HourHistogram {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the cached histogram and resets the staleness window.
func (c *HistogramCache) Set(hist *schema.HourHistogram) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = hist
	c.setAt = hist.LastUpdated
}

// IsStale reports whether the entry is absent or past its window.
func (c *HistogramCache) IsStale(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value == nil || now.Sub(c.setAt) >= c.staleAfter
}
