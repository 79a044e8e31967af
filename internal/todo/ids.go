package todo

import (
	"sync"
	"time"
)

// IDGenerator hands out millisecond-timestamp shaped ids that never repeat
// within a process, even when several are requested in the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	candidate := g.now().UnixMilli()
	if candidate <= g.last {
		candidate = g.last + 1
	}
	g.last = candidate
	return candidate
}

// Observe records an id already in use so later ids sort after it.
func (g *IDGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}
