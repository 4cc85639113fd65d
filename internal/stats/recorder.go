// Package stats aggregates search events consumed by the worker.
package stats

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/kofiantwi/airroutes/internal/kafka"
)

// Recorder counts searches per airport pair.
type Recorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[string]int)}
}

// Record tallies one search event.
func (r *Recorder) Record(ctx context.Context, event kafka.SearchEvent) error {
	pair := fmt.Sprintf("%s-%s", event.FromCode, event.ToCode)

	r.mu.Lock()
	r.counts[pair]++
	count := r.counts[pair]
	r.mu.Unlock()

	log.Printf("search %s: %s to %s, %d flights, %.2f km (seen %d times)",
		event.ID, event.FromCode, event.ToCode, event.Flights, event.DistanceKM, count)
	return nil
}

// Report logs the per-pair totals, most searched first.
func (r *Recorder) Report() {
	r.mu.Lock()
	pairs := make([]string, 0, len(r.counts))
	for pair := range r.counts {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool { return r.counts[pairs[i]] > r.counts[pairs[j]] })
	lines := make([]string, len(pairs))
	for i, pair := range pairs {
		lines[i] = fmt.Sprintf("%s=%d", pair, r.counts[pair])
	}
	r.mu.Unlock()

	if len(lines) == 0 {
		log.Printf("no searches recorded yet")
		return
	}
	log.Printf("search totals: %v", lines)
}
