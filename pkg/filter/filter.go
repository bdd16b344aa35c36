// Package filter restricts which readings take part in an analysis run.
package filter

import (
	"github.com/iotools/iotstat/internal/utils"
	"github.com/iotools/iotstat/pkg/data"
)

// Config holds the run's restrictions. Every field is optional: a nil
// interval or an empty allow-list places no restriction on that axis.
type Config struct {
	Interval *utils.TimeInterval
	Sites    []string
	Devices  []string
	Metrics  []data.Metric
}

// Match reports whether the reading passes every configured restriction. The
// time window is inclusive on both bounds; site and device matching is exact
// and case-sensitive. Pure predicate, no side effects.
func (c *Config) Match(r *data.Reading) bool {
	if c.Interval != nil && !c.Interval.Contains(r.Time) {
		return false
	}
	if len(c.Sites) > 0 && !utils.IsIn(r.Site, c.Sites) {
		return false
	}
	if len(c.Devices) > 0 && !utils.IsIn(r.Device, c.Devices) {
		return false
	}
	if len(c.Metrics) > 0 && !metricIn(r.Metric, c.Metrics) {
		return false
	}
	return true
}

func metricIn(m data.Metric, arr []data.Metric) bool {
	for _, x := range arr {
		if m == x {
			return true
		}
	}
	return false
}
