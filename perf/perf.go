package perf

import (
	"sort"
	"sync"
	"time"
)

// Recorder accumulates named timer durations and counter totals. Its zero
// value with Enabled left false is a safe no-op.
type Recorder struct {
	Enabled bool

	mu       sync.Mutex
	timers   map[string]time.Duration
	counters map[string]int64
}

// NewRecorder builds a Recorder; enabled mirrors ellpsp2cfg.Config.Debug.
func NewRecorder(enabled bool) *Recorder {
	return &Recorder{
		Enabled:  enabled,
		timers:   make(map[string]time.Duration),
		counters: make(map[string]int64),
	}
}

// Time runs fn and, if enabled, adds its duration to the named timer
// (norm, x2, add, reduce, and driver-defined names are all valid).
func (r *Recorder) Time(name string, fn func()) {
	if r == nil || !r.Enabled {
		fn()
		return
	}
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	r.mu.Lock()
	r.timers[name] += elapsed
	r.mu.Unlock()
}

// Count increments the named counter by delta.
func (r *Recorder) Count(name string, delta int64) {
	if r == nil || !r.Enabled {
		return
	}
	r.mu.Lock()
	r.counters[name] += delta
	r.mu.Unlock()
}

// Timers returns a snapshot of accumulated timer durations.
func (r *Recorder) Timers() map[string]time.Duration {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]time.Duration, len(r.timers))
	for k, v := range r.timers {
		out[k] = v
	}
	return out
}

// Counters returns a snapshot of accumulated counter totals.
func (r *Recorder) Counters() map[string]int64 {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.counters))
	for k, v := range r.counters {
		out[k] = v
	}
	return out
}

// Names returns the recorded timer names in sorted order, for stable
// report formatting.
func (r *Recorder) Names() []string {
	timers := r.Timers()
	names := make([]string, 0, len(timers))
	for k := range timers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
