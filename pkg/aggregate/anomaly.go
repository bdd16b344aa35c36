package aggregate

import (
	"math"

	"github.com/iotools/iotstat/pkg/data"
)

// AnomalyThreshold is the number of population standard deviations a reading
// must deviate from its group's mean to count as an anomaly.
const AnomalyThreshold = 3.0

// AnomalyCounter counts, during pass two, the readings that deviate from
// their group's finalized mean by more than AnomalyThreshold standard
// deviations. It requires a finalized Aggregator: classification against a
// partially-built mean would make the count depend on row order.
type AnomalyCounter struct {
	agg    *Aggregator
	counts map[data.GroupKey]int64
}

func NewAnomalyCounter(agg *Aggregator) *AnomalyCounter {
	if !agg.finalized {
		panic("logic error: AnomalyCounter needs a finalized Aggregator")
	}
	return &AnomalyCounter{
		agg:    agg,
		counts: make(map[data.GroupKey]int64),
	}
}

// Observe classifies one pass-two reading. For a zero-stddev group the
// threshold is zero, so any value not equal to the mean is flagged.
func (c *AnomalyCounter) Observe(r *data.Reading) {
	g, ok := c.agg.Group(r.Key())
	if !ok {
		return
	}
	if math.Abs(r.Value-g.Mean()) > AnomalyThreshold*g.PopulationStdDev() {
		c.counts[r.Key()]++
	}
}

// Count returns the number of anomalies observed for a group.
func (c *AnomalyCounter) Count(key data.GroupKey) int64 {
	return c.counts[key]
}
