// Package parse turns raw tokenized log rows into validated readings.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/iotools/iotstat/pkg/data"
)

// RowTimeLayout is the timestamp layout used by the IoT data exports,
// e.g. "2024-03-01 12:30:00 +0000 UTC".
const RowTimeLayout = "2006-01-02 15:04:05 -0700 MST"

// NumFields is the exact number of fields a well-formed row carries:
// time, site, device, metric, unit, value.
const NumFields = 6

// ErrorCode classifies why a row failed to parse.
type ErrorCode int

const (
	InvalidTimestamp ErrorCode = iota
	UnknownMetric
	UnknownUnit
	InvalidValue
	MalformedRow
)

var errorCodeNames = map[ErrorCode]string{
	InvalidTimestamp: "invalid timestamp",
	UnknownMetric:    "unknown metric",
	UnknownUnit:      "unknown unit",
	InvalidValue:     "invalid value",
	MalformedRow:     "malformed row",
}

// Error is a row-level parse failure. Every Error is fatal to the run: rows
// are never silently dropped.
type Error struct {
	Code  ErrorCode
	Value string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: '%s'", errorCodeNames[e.Code], e.Value)
}

func newError(code ErrorCode, value string) *Error {
	return &Error{Code: code, Value: value}
}

// Row parses one raw tokenized row into a Reading. It is a pure function:
// either every field validates and a Reading is returned, or the first
// failing field is reported as an *Error.
func Row(fields []string) (*data.Reading, error) {
	if len(fields) != NumFields {
		return nil, newError(MalformedRow, fmt.Sprintf("%d fields, want %d", len(fields), NumFields))
	}
	rawTime, site, device := fields[0], fields[1], fields[2]
	rawMetric, rawUnit, rawValue := fields[3], fields[4], fields[5]

	if site == "" || device == "" {
		return nil, newError(MalformedRow, "empty site or device")
	}

	ts, err := time.Parse(RowTimeLayout, rawTime)
	if err != nil {
		return nil, newError(InvalidTimestamp, rawTime)
	}

	metric, err := data.MetricFromString(rawMetric)
	if err != nil {
		return nil, newError(UnknownMetric, rawMetric)
	}

	unit, err := data.UnitFromString(rawUnit)
	if err != nil || unit.Metric() != metric {
		// A unit that exists but belongs to another metric is just as
		// unknown for this row as a spelling we have never seen.
		return nil, newError(UnknownUnit, rawUnit)
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, newError(InvalidValue, rawValue)
	}

	return &data.Reading{
		Time:   ts.UTC(),
		Site:   site,
		Device: device,
		Metric: metric,
		Unit:   unit,
		Value:  value,
	}, nil
}
