// Package registry holds the idamax kernel variants available to this build.
//
// Variants register from init() in their arch packages. Lookup picks the
// highest-priority variant the CPU supports; equal priorities keep
// registration order.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// IdamaxFn scans the strided view x[offset + i*stride], i in [0, n), and
// returns the logical index of the first element of largest magnitude, or
// -1 when n < 1.
type IdamaxFn func(n int, x []float64, stride, offset int) int

// OpEntry is one registered kernel variant.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Idamax    IdamaxFn
}

// OpRegistry stores available variants, kept in descending priority order.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds a variant. An entry with the same name replaces the earlier
// one in place of appending a duplicate.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	r.entries = append(r.entries, entry)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Priority > r.entries[j].Priority
	})
}

// Lookup returns the highest-priority variant supported by features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			entry := r.entries[i]
			return &entry
		}
	}
	return nil
}

// Supported returns every variant features can run, best first.
func (r *OpRegistry) Supported(features cpu.Features) []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []OpEntry
	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			out = append(out, entry)
		}
	}
	return out
}

// Entries returns a copy of all variants, best first.
func (r *OpRegistry) Entries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
