package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request counts in-process. It is reset on restart;
// anything longer-lived belongs in the reports domain.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rejectedOps     uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 409 || status == 422 {
		atomic.AddUint64(&c.rejectedOps, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	rejected := atomic.LoadUint64(&c.rejectedOps)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":   total,
		"errorsTotal":     errs,
		"rejectedTotal":   rejected,
		"avgDurationMs":   avg,
		"totalDurationMs": totalMs,
	}
}
