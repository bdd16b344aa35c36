package data

import (
	"fmt"
	"time"
)

// Reading is one validated sensor observation. Every Reading that exists has
// a known metric, a unit valid for that metric, and a finite value.
type Reading struct {
	Time   time.Time
	Site   string
	Device string
	Metric Metric
	Unit   Unit
	Value  float64
}

// Key returns the aggregation group this reading belongs to.
func (r *Reading) Key() GroupKey {
	return GroupKey{Site: r.Site, Device: r.Device, Metric: r.Metric}
}

// GroupKey identifies exactly one aggregation group. Equality is exact string
// and enum equality; site and device casing is significant.
type GroupKey struct {
	Site   string
	Device string
	Metric Metric
}

// Less orders keys lexically by (site, device, metric name). This is the tie
// break order for value sorts and the whole order for group_key_order.
func (k GroupKey) Less(other GroupKey) bool {
	if k.Site != other.Site {
		return k.Site < other.Site
	}
	if k.Device != other.Device {
		return k.Device < other.Device
	}
	return k.Metric.String() < other.Metric.String()
}

// String formats the key the way it appears in reports and errors.
func (k GroupKey) String() string {
	return fmt.Sprintf("%s/%s %s", k.Site, k.Device, k.Metric)
}
