// Package stats maps requested statistic names onto finalized group
// aggregates and orders the results.
package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported statistic names.
const (
	StatAverage          = "average"
	StatMin              = "min"
	StatMax              = "max"
	StatCount            = "count"
	StatPopulationStdDev = "population_stddev"
	StatAnomalyCount     = "anomaly_count"
)

// Sort identifies the ordering applied to a statistic's result rows.
type Sort int

const (
	// SortValueDesc orders by descending value, ties broken by ascending
	// (site, device, metric). The default.
	SortValueDesc Sort = iota
	// SortValueAsc orders by ascending value, same tie break.
	SortValueAsc
	// SortGroupKeyOrder orders by ascending (site, device, metric) alone.
	SortGroupKeyOrder
)

const (
	sortValueDescName     = "value_desc"
	sortValueAscName      = "value_asc"
	sortGroupKeyOrderName = "group_key_order"
)

const (
	// DefaultK is the number of result rows kept when no k option is given.
	DefaultK = 10
	// KAll disables truncation.
	KAll = -1

	kAllToken = "all"
)

// ConfigErrorCode classifies statistic request failures. All of them are
// detected while configuring, before any row is read.
type ConfigErrorCode int

const (
	UnknownStatistic ConfigErrorCode = iota
	UnknownOption
	InvalidK
)

var configErrorCodeNames = map[ConfigErrorCode]string{
	UnknownStatistic: "unknown statistic",
	UnknownOption:    "unknown option",
	InvalidK:         "invalid k",
}

// ConfigError is a request-level failure.
type ConfigError struct {
	Code    ConfigErrorCode
	Request string
	Detail  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s in request '%s': %s", configErrorCodeNames[e.Code], e.Request, e.Detail)
}

// Request is one parsed statistic request.
type Request struct {
	// Name is the registered statistic to compute.
	Name string
	// Label is the display label for the result table. Defaults to Name,
	// overridden by the name= option.
	Label string
	Sort  Sort
	K     int
}

// NeedsSecondPass reports whether computing any of the requests requires a
// second pass over the row source.
func NeedsSecondPass(requests []*Request) bool {
	for _, r := range requests {
		if r.Name == StatAnomalyCount {
			return true
		}
	}
	return false
}

// ParseRequest parses the "name[:opt=val,...]" statistic request syntax.
// Supported options are sort={value_desc,value_asc,group_key_order},
// k={positive int,all} and name=<label>. Validation is eager: a bad request
// fails here, never mid-run.
func ParseRequest(s string) (*Request, error) {
	name := s
	var rawOpts string
	if i := strings.Index(s, ":"); i >= 0 {
		name, rawOpts = s[:i], s[i+1:]
	}

	if !Known(name) {
		return nil, &ConfigError{Code: UnknownStatistic, Request: s, Detail: name}
	}

	req := &Request{Name: name, Label: name, Sort: SortValueDesc, K: DefaultK}
	if rawOpts == "" {
		return req, nil
	}

	for _, opt := range strings.Split(rawOpts, ",") {
		parts := strings.SplitN(opt, "=", 2)
		if len(parts) != 2 {
			return nil, &ConfigError{Code: UnknownOption, Request: s, Detail: opt}
		}
		key, val := parts[0], parts[1]
		switch key {
		case "sort":
			order, err := sortFromString(val)
			if err != nil {
				return nil, &ConfigError{Code: UnknownOption, Request: s, Detail: opt}
			}
			req.Sort = order
		case "k":
			k, err := parseK(val)
			if err != nil {
				return nil, &ConfigError{Code: InvalidK, Request: s, Detail: val}
			}
			req.K = k
		case "name":
			req.Label = val
		default:
			return nil, &ConfigError{Code: UnknownOption, Request: s, Detail: key}
		}
	}
	return req, nil
}

// ParseRequests parses an ordered list of statistic requests, failing on the
// first invalid one.
func ParseRequests(specs []string) ([]*Request, error) {
	requests := make([]*Request, 0, len(specs))
	for _, s := range specs {
		req, err := ParseRequest(s)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func sortFromString(s string) (Sort, error) {
	switch s {
	case sortValueDescName:
		return SortValueDesc, nil
	case sortValueAscName:
		return SortValueAsc, nil
	case sortGroupKeyOrderName:
		return SortGroupKeyOrder, nil
	}
	return 0, fmt.Errorf("unknown sort order: '%s'", s)
}

func parseK(s string) (int, error) {
	if s == kAllToken {
		return KAll, nil
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if k <= 0 {
		return 0, fmt.Errorf("k must be positive, got %d", k)
	}
	return k, nil
}
