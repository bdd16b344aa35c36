package main

import (
	"fmt"
	"time"

	"github.com/blagojts/viper"

	"github.com/iotools/iotstat/internal/utils"
	"github.com/iotools/iotstat/pkg/data"
	"github.com/iotools/iotstat/pkg/filter"
)

const (
	errNoInputFile    = "no input file specified; use --file"
	errBadTimeFmt     = "cannot parse time from string '%s': %v"
	errUnknownFmtFmt  = "output format '%s' unrecognized; allowed: %v"
	errUnknownMetrics = "invalid metric filter: %v"
)

// runSpec is the fully-validated run configuration handed to the pipeline.
type runSpec struct {
	file        string
	filter      *filter.Config
	statistics  []string
	format      string
	debug       int
	profileFile string
}

func parseConfig(v *viper.Viper) (*runSpec, error) {
	file := v.GetString("file")
	if file == "" {
		return nil, fmt.Errorf(errNoInputFile)
	}

	format := v.GetString("format")
	if !utils.IsIn(format, validFormats) {
		return nil, fmt.Errorf(errUnknownFmtFmt, format, validFormats)
	}

	filterConfig, err := parseFilterConfig(v)
	if err != nil {
		return nil, err
	}

	return &runSpec{
		file:        file,
		filter:      filterConfig,
		statistics:  v.GetStringSlice("statistic"),
		format:      format,
		debug:       v.GetInt("debug"),
		profileFile: v.GetString("profile-file"),
	}, nil
}

func parseFilterConfig(v *viper.Viper) (*filter.Config, error) {
	var start, end time.Time
	var err error
	if s := v.GetString("start"); s != "" {
		if start, err = utils.ParseUTCTime(s); err != nil {
			return nil, fmt.Errorf(errBadTimeFmt, s, err)
		}
	}
	if s := v.GetString("end"); s != "" {
		if end, err = utils.ParseUTCTime(s); err != nil {
			return nil, fmt.Errorf(errBadTimeFmt, s, err)
		}
	}

	config := &filter.Config{
		Sites:   v.GetStringSlice("site"),
		Devices: v.GetStringSlice("device"),
	}
	if !start.IsZero() || !end.IsZero() {
		interval, err := utils.NewTimeInterval(start, end)
		if err != nil {
			return nil, err
		}
		config.Interval = interval
	}

	for _, m := range v.GetStringSlice("metric") {
		metric, err := data.MetricFromString(m)
		if err != nil {
			return nil, fmt.Errorf(errUnknownMetrics, err)
		}
		config.Metrics = append(config.Metrics, metric)
	}
	return config, nil
}
