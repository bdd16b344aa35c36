package stats

import (
	"sort"

	"github.com/iotools/iotstat/pkg/aggregate"
	"github.com/iotools/iotstat/pkg/data"
)

// ResultRow is one group's projected value, with the group's unit attached
// for display.
type ResultRow struct {
	Key   data.GroupKey
	Unit  data.Unit
	Value float64
}

// projection extracts one number from a finalized group aggregate.
type projection func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64

// registry is the fixed mapping from statistic name to projection. The set
// is closed; ParseRequest rejects anything not listed here.
var registry = map[string]projection{
	StatAverage: func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64 {
		return g.Mean()
	},
	StatMin: func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64 {
		return g.Min
	},
	StatMax: func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64 {
		return g.Max
	},
	StatCount: func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64 {
		return float64(g.Count)
	},
	StatPopulationStdDev: func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64 {
		return g.PopulationStdDev()
	},
	StatAnomalyCount: func(e *Engine, key data.GroupKey, g *aggregate.GroupAggregate) float64 {
		return float64(e.anomalies.Count(key))
	},
}

// Known reports whether name is a registered statistic.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Engine projects finalized aggregates into ordered result rows. The
// anomaly counter may be nil when no anomaly_count statistic was requested.
type Engine struct {
	agg       *aggregate.Aggregator
	anomalies *aggregate.AnomalyCounter
}

func NewEngine(agg *aggregate.Aggregator, anomalies *aggregate.AnomalyCounter) *Engine {
	return &Engine{agg: agg, anomalies: anomalies}
}

// Rows computes the ordered, truncated result rows for one request.
func (e *Engine) Rows(req *Request) []ResultRow {
	project, ok := registry[req.Name]
	if !ok {
		panic("logic error: unvalidated statistic request: " + req.Name)
	}
	if req.Name == StatAnomalyCount && e.anomalies == nil {
		panic("logic error: anomaly_count requested without a second pass")
	}

	keys := e.agg.Keys()
	rows := make([]ResultRow, 0, len(keys))
	for _, key := range keys {
		g, _ := e.agg.Group(key)
		rows = append(rows, ResultRow{Key: key, Unit: g.Unit, Value: project(e, key, g)})
	}

	// Keys() is already in ascending key order, which doubles as the tie
	// break for the value sorts, making row order deterministic.
	switch req.Sort {
	case SortValueDesc:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	case SortValueAsc:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value < rows[j].Value })
	case SortGroupKeyOrder:
		// already ordered
	}

	if req.K != KAll && len(rows) > req.K {
		rows = rows[:req.K]
	}
	return rows
}
