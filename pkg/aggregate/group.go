// Package aggregate maintains per-group streaming statistics for one
// analysis run.
package aggregate

import (
	"math"

	"github.com/iotools/iotstat/pkg/data"
)

// GroupAggregate collects simple streaming statistics for one (site, device,
// metric) group. The unit is established by the first reading pushed and is
// fixed thereafter.
type GroupAggregate struct {
	Unit       data.Unit
	Count      int64
	Sum        float64
	SumSquares float64
	Min        float64
	Max        float64
}

// Push updates a GroupAggregate with a new value.
func (g *GroupAggregate) Push(n float64) {
	if g.Count == 0 {
		g.Min = n
		g.Max = n
		g.Sum = n
		g.SumSquares = n * n
		g.Count = 1
		return
	}

	if n < g.Min {
		g.Min = n
	}
	if n > g.Max {
		g.Max = n
	}

	g.Sum += n
	g.SumSquares += n * n
	g.Count++
}

// Mean returns the arithmetic mean of all pushed values.
func (g *GroupAggregate) Mean() float64 {
	return g.Sum / float64(g.Count)
}

// PopulationVariance returns the population variance (divisor Count, not
// Count-1). Floating-point error can drive the raw result a hair below zero
// for constant-valued groups; that is clamped to 0.
func (g *GroupAggregate) PopulationVariance() float64 {
	mean := g.Mean()
	variance := g.SumSquares/float64(g.Count) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return variance
}

// PopulationStdDev returns the population standard deviation.
func (g *GroupAggregate) PopulationStdDev() float64 {
	return math.Sqrt(g.PopulationVariance())
}
