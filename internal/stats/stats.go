package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Run accumulates file and byte totals across a single execution. Counters
// only grow; both the crawl path and the extractor path feed the same Run.
type Run struct {
	files   atomic.Int64
	bytes   atomic.Int64
	started time.Time
}

// NewRun starts the clock for a new execution.
func NewRun() *Run {
	return &Run{started: time.Now()}
}

// AddFile records one downloaded file of the given size.
func (r *Run) AddFile(size int64) {
	r.Add(1, size)
}

// Add records a batch of downloaded files.
func (r *Run) Add(files, bytes int64) {
	r.files.Add(files)
	r.bytes.Add(bytes)
}

// Files returns the number of files downloaded so far.
func (r *Run) Files() int64 { return r.files.Load() }

// Bytes returns the total bytes downloaded so far.
func (r *Run) Bytes() int64 { return r.bytes.Load() }

// Started returns the run's start time.
func (r *Run) Started() time.Time { return r.started }

// Snapshot captures the totals for the final report.
func (r *Run) Snapshot() Report {
	return Report{
		Files: r.files.Load(),
		Bytes: r.bytes.Load(),
		Start: r.started,
		End:   time.Now(),
	}
}

// Report is the summary printed after a run completes.
type Report struct {
	Files int64
	Bytes int64
	Start time.Time
	End   time.Time
}

// Elapsed returns the wall-clock duration of the run.
func (r Report) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Report) String() string {
	mb := float64(r.Bytes) / (1024 * 1024)
	gb := mb / 1024
	elapsed := r.Elapsed()
	return fmt.Sprintf(
		"Files downloaded: %d\n"+
			"Total size: %.2f MB (%.3f GB)\n"+
			"Started:  %s\n"+
			"Finished: %s\n"+
			"Elapsed:  %.0fs (%.1fm / %.2fh)",
		r.Files, mb, gb,
		r.Start.Format(time.RFC1123),
		r.End.Format(time.RFC1123),
		elapsed.Seconds(), elapsed.Minutes(), elapsed.Hours())
}
