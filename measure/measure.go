// Package measure is a process-wide counter registry for the algebra
// hotspots. Counting is disabled unless the DIRAC_MEASURE environment
// variable is set; the CLIs dump the counters after evaluation when enabled.
package measure

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// Enabled gates all recording.
var Enabled = os.Getenv("DIRAC_MEASURE") != ""

// Recorder accumulates named counters.
type Recorder struct {
	mu     sync.Mutex
	counts map[string]uint64
}

// Global is the registry used throughout the module.
var Global = NewRecorder()

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[string]uint64)}
}

// Add increments the named counter by n. No-op while Enabled is false.
func (r *Recorder) Add(name string, n uint64) {
	if !Enabled {
		return
	}
	r.mu.Lock()
	r.counts[name] += n
	r.mu.Unlock()
}

// SnapshotAndReset returns the counter map and clears it.
func (r *Recorder) SnapshotAndReset() map[string]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.counts
	r.counts = make(map[string]uint64)
	return out
}

// Dump prints the counters sorted by name.
func (r *Recorder) Dump() {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.counts))
	for k := range r.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-32s %10d\n", k, r.counts[k])
	}
}
