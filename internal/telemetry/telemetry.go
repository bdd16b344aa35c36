// Package telemetry records per-row processing latencies so long runs can be
// profiled without instrumenting the pipeline by hand.
package telemetry

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Latencies are recorded in nanoseconds from 1ns up to 10s per row.
const (
	minLatency = 1
	maxLatency = int64(10 * time.Second)
	sigFigs    = 3
)

// RunRecorder collects one HDR histogram of per-row processing latency per
// pipeline pass.
type RunRecorder struct {
	hists map[string]*hdrhistogram.Histogram
}

func NewRunRecorder() *RunRecorder {
	return &RunRecorder{hists: make(map[string]*hdrhistogram.Histogram)}
}

// Record adds one row's processing duration to the named pass.
func (r *RunRecorder) Record(pass string, d time.Duration) {
	h, ok := r.hists[pass]
	if !ok {
		h = hdrhistogram.New(minLatency, maxLatency, sigFigs)
		r.hists[pass] = h
	}
	// Out-of-range durations are dropped rather than failing the run; the
	// histogram is advisory output only.
	_ = h.RecordValue(int64(d))
}

// Write prints a latency summary per pass, ordered by pass name.
func (r *RunRecorder) Write(w io.Writer) error {
	passes := make([]string, 0, len(r.hists))
	for p := range r.hists {
		passes = append(passes, p)
	}
	sort.Strings(passes)

	for _, p := range passes {
		h := r.hists[p]
		_, err := fmt.Fprintf(w, "%s: rows: %d, p50: %v, p99: %v, max: %v\n",
			p,
			h.TotalCount(),
			time.Duration(h.ValueAtQuantile(50.0)),
			time.Duration(h.ValueAtQuantile(99.0)),
			time.Duration(h.Max()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
