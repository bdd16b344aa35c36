// Package report renders ordered result tables for terminal output or YAML
// consumption.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/iotools/iotstat/pkg/pipeline"
	"github.com/iotools/iotstat/pkg/stats"
)

// integerStatistics lists the statistics whose values are exact counts and
// render without decimals.
var integerStatistics = map[string]bool{
	stats.StatCount:        true,
	stats.StatAnomalyCount: true,
}

// WriteText writes each result table with the group-key column padded to a
// common width.
func WriteText(w io.Writer, results []pipeline.Result) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:\n", res.Request.Label); err != nil {
			return err
		}
		if len(res.Rows) == 0 {
			if _, err := fmt.Fprintln(w, "  (no groups)"); err != nil {
				return err
			}
			continue
		}

		maxKeyLength := 0
		for _, row := range res.Rows {
			if l := len(row.Key.String()); l > maxKeyLength {
				maxKeyLength = l
			}
		}
		for _, row := range res.Rows {
			paddedKey := row.Key.String()
			for len(paddedKey) < maxKeyLength {
				paddedKey += " "
			}
			if _, err := fmt.Fprintf(w, "  %s = %s\n", paddedKey, formatValue(res.Request.Name, row)); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatValue(statName string, row stats.ResultRow) string {
	if integerStatistics[statName] {
		return fmt.Sprintf("%d", int64(row.Value))
	}
	return fmt.Sprintf("%.2f %s", row.Value, row.Unit)
}

type yamlRow struct {
	Group string  `yaml:"group"`
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit,omitempty"`
}

type yamlTable struct {
	Statistic string    `yaml:"statistic"`
	Rows      []yamlRow `yaml:"rows"`
}

// WriteYAML writes the result tables as a YAML document, preserving row
// order.
func WriteYAML(w io.Writer, results []pipeline.Result) error {
	tables := make([]yamlTable, 0, len(results))
	for _, res := range results {
		table := yamlTable{Statistic: res.Request.Label, Rows: []yamlRow{}}
		for _, row := range res.Rows {
			unit := row.Unit.String()
			if integerStatistics[res.Request.Name] {
				unit = ""
			}
			table.Rows = append(table.Rows, yamlRow{
				Group: row.Key.String(),
				Value: row.Value,
				Unit:  unit,
			})
		}
		tables = append(tables, table)
	}
	out, err := yaml.Marshal(tables)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
