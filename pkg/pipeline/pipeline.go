// Package pipeline drives an analysis run: rows flow from a restartable
// source through parsing, filtering and aggregation, then the requested
// statistics are projected into ordered result tables.
package pipeline

import (
	"time"

	"github.com/pkg/errors"

	"github.com/iotools/iotstat/internal/telemetry"
	"github.com/iotools/iotstat/pkg/aggregate"
	"github.com/iotools/iotstat/pkg/data"
	"github.com/iotools/iotstat/pkg/data/source"
	"github.com/iotools/iotstat/pkg/filter"
	"github.com/iotools/iotstat/pkg/parse"
	"github.com/iotools/iotstat/pkg/stats"
)

// State is the pipeline's phase. A run moves Configuring -> PassOneRunning
// -> (PassTwoRunning) -> Reporting -> Done, or to Failed from any state on
// the first error.
type State int

const (
	Configuring State = iota
	PassOneRunning
	PassTwoRunning
	Reporting
	Done
	Failed
)

const (
	passOneName = "pass-one"
	passTwoName = "pass-two"

	errNoStatistics = "no statistics requested"
	errRowFmt       = "row %d"
)

// Result pairs one statistic request with its ordered result rows.
type Result struct {
	Request *stats.Request
	Rows    []stats.ResultRow
}

// Pipeline executes one analysis run. It exclusively owns the group
// aggregates for the duration of the run; no reference escapes before the
// owning pass finishes.
type Pipeline struct {
	filter   *filter.Config
	requests []*stats.Request
	state    State
	recorder *telemetry.RunRecorder
}

// New validates the statistic request specs eagerly and returns a configured
// pipeline. Request errors surface here, before any row is read.
func New(filterConfig *filter.Config, requestSpecs []string) (*Pipeline, error) {
	if len(requestSpecs) == 0 {
		return nil, errors.New(errNoStatistics)
	}
	requests, err := stats.ParseRequests(requestSpecs)
	if err != nil {
		return nil, err
	}
	if filterConfig == nil {
		filterConfig = &filter.Config{}
	}
	return &Pipeline{
		filter:   filterConfig,
		requests: requests,
		state:    Configuring,
	}, nil
}

// SetRecorder attaches a latency recorder. Must be called before Run.
func (p *Pipeline) SetRecorder(r *telemetry.RunRecorder) {
	p.recorder = r
}

// State returns the pipeline's current phase.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the whole analysis eagerly: pass one builds the aggregates,
// pass two (only when an anomaly statistic was requested) counts outliers
// against the finalized means, and the statistic engine produces one ordered
// table per request. The first error aborts the run with no output.
func (p *Pipeline) Run(src source.RowSource) ([]Result, error) {
	if p.state != Configuring {
		panic("logic error: pipeline Run called twice")
	}

	p.state = PassOneRunning
	agg := aggregate.NewAggregator()
	err := p.scan(src, passOneName, func(r *data.Reading) error {
		return agg.Fold(r)
	})
	if err != nil {
		return p.fail(err)
	}
	agg.Finalize()

	var anomalies *aggregate.AnomalyCounter
	if stats.NeedsSecondPass(p.requests) {
		p.state = PassTwoRunning
		if err := src.Reset(); err != nil {
			return p.fail(errors.Wrap(err, "restarting row source for pass two"))
		}
		anomalies = aggregate.NewAnomalyCounter(agg)
		err := p.scan(src, passTwoName, func(r *data.Reading) error {
			anomalies.Observe(r)
			return nil
		})
		if err != nil {
			return p.fail(err)
		}
	}

	p.state = Reporting
	engine := stats.NewEngine(agg, anomalies)
	results := make([]Result, 0, len(p.requests))
	for _, req := range p.requests {
		results = append(results, Result{Request: req, Rows: engine.Rows(req)})
	}

	p.state = Done
	return results, nil
}

// scan runs one complete pass: parse every row, apply the filter, hand
// passing readings to fold. Rows are processed strictly in order; the first
// parse or validation error aborts with the offending row number attached.
func (p *Pipeline) scan(src source.RowSource, pass string, fold func(*data.Reading) error) error {
	for src.Next() {
		start := time.Now()

		r, err := parse.Row(src.Row())
		if err != nil {
			return errors.Wrapf(err, errRowFmt, src.RowNumber())
		}
		if p.filter.Match(r) {
			if err := fold(r); err != nil {
				return errors.Wrapf(err, errRowFmt, src.RowNumber())
			}
		}

		if p.recorder != nil {
			p.recorder.Record(pass, time.Since(start))
		}
	}
	return errors.Wrap(src.Err(), "scanning "+pass)
}

func (p *Pipeline) fail(err error) ([]Result, error) {
	p.state = Failed
	return nil, err
}
