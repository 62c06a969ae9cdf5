package server

import (
	"sync"
	"time"

	"github.com/mj1618/appname/internal/launch"
)

// ReportCache holds the last application report for a TTL. The name sources
// do not change while the process runs, but the activation policy can.
type ReportCache struct {
	mu        sync.Mutex
	report    launch.Report
	timestamp time.Time
	valid     bool
	ttl       time.Duration
	now       func() time.Time
}

// NewReportCache creates a new cache. A ttl of 0 disables caching.
func NewReportCache(ttl time.Duration) *ReportCache {
	return &ReportCache{ttl: ttl, now: time.Now}
}

// Get returns the cached report if within TTL, otherwise calls read and
// caches a successful result.
func (c *ReportCache) Get(read func() (launch.Report, error)) (launch.Report, error) {
	if c.ttl == 0 {
		return read()
	}

	c.mu.Lock()
	if c.valid && c.now().Sub(c.timestamp) < c.ttl {
		rep := c.report
		c.mu.Unlock()
		return rep, nil
	}
	c.mu.Unlock()

	rep, err := read()
	if err != nil {
		return rep, err
	}

	c.mu.Lock()
	c.report = rep
	c.timestamp = c.now()
	c.valid = true
	c.mu.Unlock()
	return rep, nil
}

// Invalidate drops the cached report.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}
