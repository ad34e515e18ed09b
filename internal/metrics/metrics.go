package metrics

import (
	"sync"
	"time"
)

type pageStats struct {
	renders     int
	errors      int
	lastRows    int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about page renders and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*pageStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*pageStats),
		otel:  otel,
	}
}

// RecordPageRender counts a render of page along with the number of table rows produced.
func (r *Recorder) RecordPageRender(page string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[page]
	if !ok {
		stats = &pageStats{}
		r.stats[page] = stats
	}
	stats.renders++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.lastRows = rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPageRender(page, rows, duration, err)
	}
}

// Snapshot is a copy of the stats recorded for one page.
type Snapshot struct {
	Renders     int
	Errors      int
	LastRows    int
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for the page.
func (r *Recorder) Snapshot(page string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[page]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Renders:     stats.renders,
		Errors:      stats.errors,
		LastRows:    stats.lastRows,
		LastLatency: stats.lastLatency,
	}
}

// PageRenders returns the total renders recorded for a page.
func (r *Recorder) PageRenders(page string) int {
	return r.Snapshot(page).Renders
}

// PageErrors returns the failed renders recorded for a page.
func (r *Recorder) PageErrors(page string) int {
	return r.Snapshot(page).Errors
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
