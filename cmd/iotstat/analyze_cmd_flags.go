package main

import (
	"strings"

	"github.com/spf13/pflag"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var validFormats = []string{formatText, formatYAML}

func addAnalyzeFlags(fs *pflag.FlagSet) {
	fs.String("file", "", "Sensor log export to analyze (.csv, .csv.gz or .csv.sz)")
	fs.String("start", "", "Only include readings at or after this time, '2006-01-02 15:04:05' in UTC")
	fs.String("end", "", "Only include readings at or before this time, '2006-01-02 15:04:05' in UTC")
	fs.StringSlice("site", nil, "Only include readings for these sites (repeatable, exact match)")
	fs.StringSlice("device", nil, "Only include readings for these devices (repeatable, exact match)")
	fs.StringSlice("metric", nil, "Only include readings for these metrics (repeatable, aliases accepted)")
	fs.StringSlice(
		"statistic",
		nil,
		"Statistic to compute, format name[:option=value,...] (repeatable).\n"+
			"Statistics: average, min, max, count, population_stddev, anomaly_count.\n"+
			"Options: sort={value_desc,value_asc,group_key_order}, k={<positive int>,all}, name=<label>.",
	)
	fs.String("format", formatText, "Output format. Valid: "+strings.Join(validFormats, ", "))
	fs.Int("debug", 0, "Control level of debug output")
	fs.String("profile-file", "", "Write CPU and memory usage of the run to this file")
}
