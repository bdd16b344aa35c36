package data

import (
	"fmt"
	"strings"
)

// Metric identifies one of the sensor measurements the analyzer understands.
// The set is closed: rows naming anything else are rejected at parse time.
type Metric int

const (
	MetricTemperature Metric = iota
	MetricHumidity
	MetricPressure
)

// Unit identifies a unit of measure for exactly one Metric. Units are never
// converted; mixing units within a group is a validation failure.
type Unit int

const (
	UnitCelsius Unit = iota
	UnitFahrenheit
	UnitRelativeHumidity
	UnitKilopascal
)

const (
	errUnknownMetricFmt = "unknown metric: '%s'"
	errUnknownUnitFmt   = "unknown unit: '%s'"
)

// metricAliases maps the spellings seen in sensor log exports to canonical
// metrics. Lookup is case-insensitive.
var metricAliases = map[string]Metric{
	"temp":        MetricTemperature,
	"temperature": MetricTemperature,
	"hum":         MetricHumidity,
	"humidity":    MetricHumidity,
	"press":       MetricPressure,
	"pressure":    MetricPressure,
}

// unitAliases maps the unit spellings seen in sensor log exports to canonical
// units. Lookup is case-insensitive.
var unitAliases = map[string]Unit{
	"c":                 UnitCelsius,
	"cel":               UnitCelsius,
	"celsius":           UnitCelsius,
	"f":                 UnitFahrenheit,
	"fahrenheit":        UnitFahrenheit,
	"%rh":               UnitRelativeHumidity,
	"relative_humidity": UnitRelativeHumidity,
	"kpa":               UnitKilopascal,
}

var metricNames = map[Metric]string{
	MetricTemperature: "temperature",
	MetricHumidity:    "humidity",
	MetricPressure:    "pressure",
}

var unitNames = map[Unit]string{
	UnitCelsius:          "C",
	UnitFahrenheit:       "F",
	UnitRelativeHumidity: "%RH",
	UnitKilopascal:       "kPa",
}

var unitMetrics = map[Unit]Metric{
	UnitCelsius:          MetricTemperature,
	UnitFahrenheit:       MetricTemperature,
	UnitRelativeHumidity: MetricHumidity,
	UnitKilopascal:       MetricPressure,
}

// MetricFromString resolves a metric spelling, accepting known aliases in any
// casing, to its canonical Metric.
func MetricFromString(s string) (Metric, error) {
	m, ok := metricAliases[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf(errUnknownMetricFmt, s)
	}
	return m, nil
}

// UnitFromString resolves a unit spelling, accepting known aliases in any
// casing, to its canonical Unit.
func UnitFromString(s string) (Unit, error) {
	u, ok := unitAliases[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf(errUnknownUnitFmt, s)
	}
	return u, nil
}

// String returns the canonical lowercase metric name.
func (m Metric) String() string {
	return metricNames[m]
}

// String returns the display name of the unit as it appears in reports.
func (u Unit) String() string {
	return unitNames[u]
}

// Metric returns the one metric this unit measures.
func (u Unit) Metric() Metric {
	return unitMetrics[u]
}
