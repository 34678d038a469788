// Package profile collects call counters and phase timings for a run and
// dumps them as JSON. A nil *Recorder is valid and records nothing.
package profile

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"rnapairs/internal/jsonutil"
)

// Counter names.
const (
	CandidatePairs = "candidate_pairs"
	ClassifyCalls  = "classify_calls"
	BasePairs      = "base_pairs"
	Stacks         = "stacks"
	StackCalls     = "stack_calls"
	HCatalogCalls  = "hcatalog_calls"
	LWCalls        = "lw_calls"
	LWEnumerations = "lw_enumerations"
	SugarRefines   = "sugar_refines"
	StepCalls      = "step_calls"
)

var counterNames = []string{
	CandidatePairs, ClassifyCalls, BasePairs, Stacks, StackCalls,
	HCatalogCalls, LWCalls, LWEnumerations, SugarRefines, StepCalls,
}

// Recorder is safe for concurrent use.
type Recorder struct {
	counters map[string]*atomic.Int64

	mu      sync.Mutex
	timings map[string]time.Duration
}

// New returns an empty Recorder.
func New() *Recorder {
	r := &Recorder{
		counters: make(map[string]*atomic.Int64, len(counterNames)),
		timings:  make(map[string]time.Duration),
	}
	for _, n := range counterNames {
		r.counters[n] = new(atomic.Int64)
	}
	return r
}

// Add bumps a named counter. Unknown names are ignored.
func (r *Recorder) Add(name string, n int64) {
	if r == nil {
		return
	}
	if c, ok := r.counters[name]; ok {
		c.Add(n)
	}
}

// Count returns the current value of a counter.
func (r *Recorder) Count(name string) int64 {
	if r == nil {
		return 0
	}
	if c, ok := r.counters[name]; ok {
		return c.Load()
	}
	return 0
}

// Time starts timing a phase; call the returned func to stop. Repeated
// phases accumulate.
func (r *Recorder) Time(phase string) func() {
	if r == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		r.mu.Lock()
		r.timings[phase] += d
		r.mu.Unlock()
	}
}

// Report is the JSON form of a Recorder.
type Report struct {
	Counters  map[string]int64   `json:"counters"`
	TimingsMS map[string]float64 `json:"timings_ms"`
}

// Snapshot copies the current state.
func (r *Recorder) Snapshot() Report {
	rep := Report{Counters: map[string]int64{}, TimingsMS: map[string]float64{}}
	if r == nil {
		return rep
	}
	for n, c := range r.counters {
		rep.Counters[n] = c.Load()
	}
	r.mu.Lock()
	for p, d := range r.timings {
		rep.TimingsMS[p] = float64(d.Microseconds()) / 1000
	}
	r.mu.Unlock()
	return rep
}

// WriteJSON writes the snapshot to path.
func (r *Recorder) WriteJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := jsonutil.EncodePretty(f, r.Snapshot()); err != nil {
		_ = f.Close()
		return fmt.Errorf("profile: %w", err)
	}
	return f.Close()
}
