package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	attempts    int
	errors      int
	events      int
	lastLatency time.Duration
}

type snapshotStats struct {
	writes int
	errors int
}

// Recorder captures lightweight, in-memory metrics about one run.
// Counters mirror into OpenTelemetry instruments when telemetry is
// enabled; the in-memory view backs tests and the end-of-run summary.
type Recorder struct {
	mu        sync.Mutex
	fetches   map[string]*fetchStats
	snapshots snapshotStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		fetches: make(map[string]*fetchStats),
		otel:    otel,
	}
}

// RecordFetchAttempt counts a scoreboard fetch and stores its latency.
func (r *Recorder) RecordFetchAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureFetch(provider)
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(provider, duration, err)
	}
}

// RecordEvents counts how many events a fetched scoreboard carried.
func (r *Recorder) RecordEvents(provider string, count int) {
	if r == nil || count < 0 {
		return
	}

	r.mu.Lock()
	r.ensureFetch(provider).events += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEvents(provider, count)
	}
}

// RecordSnapshotWrite counts a snapshot write attempt.
func (r *Recorder) RecordSnapshotWrite(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.snapshots.writes++
	if err != nil {
		r.snapshots.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSnapshotWrite(err)
	}
}

// FetchSnapshot is a copy of the fetch counters for one provider.
type FetchSnapshot struct {
	Attempts    int
	Errors      int
	Events      int
	LastLatency time.Duration
}

// Fetches returns a copy of the current fetch stats for the provider.
func (r *Recorder) Fetches(provider string) FetchSnapshot {
	if r == nil {
		return FetchSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.fetches[provider]
	if !ok {
		return FetchSnapshot{}
	}
	return FetchSnapshot{
		Attempts:    stats.attempts,
		Errors:      stats.errors,
		Events:      stats.events,
		LastLatency: stats.lastLatency,
	}
}

// SnapshotWrites returns write and error counts for the persister.
func (r *Recorder) SnapshotWrites() (writes, errors int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots.writes, r.snapshots.errors
}

// caller must hold r.mu
func (r *Recorder) ensureFetch(provider string) *fetchStats {
	stats, ok := r.fetches[provider]
	if !ok {
		stats = &fetchStats{}
		r.fetches[provider] = stats
	}
	return stats
}
