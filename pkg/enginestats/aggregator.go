package enginestats

import (
	"sync"
	"time"

	"github.com/dmitrymomot/uaengine/pkg/renderingengine"
)

// Aggregator counts rendering engine occurrences.
// It is safe for concurrent use.
type Aggregator struct {
	mu           sync.Mutex
	counts       map[renderingengine.RenderingEngine]int
	total        int
	fullVersions bool
	now          func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithFullVersions keeps the full version in the grouping key.
// By default engines are grouped by vendor, family and short version only.
func WithFullVersions(enabled bool) Option {
	return func(a *Aggregator) { a.fullVersions = enabled }
}

// WithClock overrides the clock used to timestamp reports. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAggregator creates an empty Aggregator.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		counts: make(map[renderingengine.RenderingEngine]int),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// key maps an engine to its grouping key.
func (a *Aggregator) key(e renderingengine.RenderingEngine) renderingengine.RenderingEngine {
	if a.fullVersions {
		return e
	}
	return renderingengine.New(e.Vendor(), e.Family(), e.Version(), "")
}

// Add records one occurrence of e.
func (a *Aggregator) Add(e renderingengine.RenderingEngine) {
	k := a.key(e)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts[k]++
	a.total++
}

// AddAll records one occurrence of each engine.
func (a *Aggregator) AddAll(engines ...renderingengine.RenderingEngine) {
	for _, e := range engines {
		a.Add(e)
	}
}

// Count returns how many occurrences were recorded for the group of e.
func (a *Aggregator) Count(e renderingengine.RenderingEngine) int {
	k := a.key(e)

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[k]
}

// Total returns the number of recorded occurrences.
func (a *Aggregator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Len returns the number of distinct groups.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.counts)
}

// Reset drops all recorded occurrences.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counts = make(map[renderingengine.RenderingEngine]int)
	a.total = 0
}

// Snapshot builds a report from the current counts.
// The aggregator keeps counting afterwards.
func (a *Aggregator) Snapshot() Report {
	a.mu.Lock()
	rows := make([]Row, 0, len(a.counts))
	for e, n := range a.counts {
		rows = append(rows, newRow(e, n))
	}
	total := a.total
	a.mu.Unlock()

	return newReport(rows, total, a.now())
}
