package stats

import (
	"testing"
	"time"

	"github.com/iotools/iotstat/pkg/aggregate"
	"github.com/iotools/iotstat/pkg/data"
)

// buildAggregator folds one reading per entry of values, each into its own
// site so every value lands in a distinct group.
func buildAggregator(t *testing.T, values map[string]float64) *aggregate.Aggregator {
	t.Helper()
	agg := aggregate.NewAggregator()
	for site, v := range values {
		r := &data.Reading{
			Time:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Site:   site,
			Device: "dev_1",
			Metric: data.MetricTemperature,
			Unit:   data.UnitCelsius,
			Value:  v,
		}
		if err := agg.Fold(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	agg.Finalize()
	return agg
}

func sites(rows []ResultRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Key.Site
	}
	return out
}

func TestRowsSorting(t *testing.T) {
	agg := buildAggregator(t, map[string]float64{
		"site_a": 30,
		"site_b": 10,
		"site_c": 20,
	})
	engine := NewEngine(agg, nil)

	cases := []struct {
		desc string
		sort Sort
		want []string
	}{
		{desc: "value descending", sort: SortValueDesc, want: []string{"site_a", "site_c", "site_b"}},
		{desc: "value ascending", sort: SortValueAsc, want: []string{"site_b", "site_c", "site_a"}},
		{desc: "group key order ignores value", sort: SortGroupKeyOrder, want: []string{"site_a", "site_b", "site_c"}},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			rows := engine.Rows(&Request{Name: StatAverage, Sort: c.sort, K: KAll})
			got := sites(rows)
			if len(got) != len(c.want) {
				t.Fatalf("incorrect row count: got %d want %d", len(got), len(c.want))
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("incorrect order: got %v want %v", got, c.want)
					break
				}
			}
		})
	}
}

func TestRowsTieBreak(t *testing.T) {
	// Equal values must fall back to ascending key order for both value
	// sorts, so repeated runs produce identical output.
	agg := buildAggregator(t, map[string]float64{
		"site_c": 5,
		"site_a": 5,
		"site_b": 5,
	})
	engine := NewEngine(agg, nil)
	want := []string{"site_a", "site_b", "site_c"}
	for _, s := range []Sort{SortValueDesc, SortValueAsc} {
		rows := engine.Rows(&Request{Name: StatAverage, Sort: s, K: KAll})
		got := sites(rows)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("sort %v: incorrect tie break: got %v want %v", s, got, want)
				break
			}
		}
	}
}

func TestRowsTruncation(t *testing.T) {
	agg := buildAggregator(t, map[string]float64{
		"site_a": 1, "site_b": 2, "site_c": 3, "site_d": 4,
	})
	engine := NewEngine(agg, nil)

	cases := []struct {
		desc string
		k    int
		want int
	}{
		{desc: "k smaller than group count", k: 3, want: 3},
		{desc: "k all returns every group", k: KAll, want: 4},
		{desc: "k larger than group count", k: 100, want: 4},
		{desc: "k one", k: 1, want: 1},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			rows := engine.Rows(&Request{Name: StatCount, Sort: SortValueDesc, K: c.k})
			if len(rows) != c.want {
				t.Errorf("incorrect row count: got %d want %d", len(rows), c.want)
			}
		})
	}
}

func TestRowsTopOneAscending(t *testing.T) {
	// Request average:sort=value_asc,k=1 over groups with means 5 and 10.
	agg := buildAggregator(t, map[string]float64{"site_a": 10, "site_b": 5})
	engine := NewEngine(agg, nil)
	rows := engine.Rows(&Request{Name: StatAverage, Sort: SortValueAsc, K: 1})
	if len(rows) != 1 {
		t.Fatalf("incorrect row count: got %d want 1", len(rows))
	}
	if rows[0].Value != 5 {
		t.Errorf("incorrect value: got %v want 5", rows[0].Value)
	}
}

func TestRowsProjections(t *testing.T) {
	agg := aggregate.NewAggregator()
	for _, v := range []float64{10, 20} {
		r := &data.Reading{
			Site: "site_1", Device: "dev_1",
			Metric: data.MetricTemperature, Unit: data.UnitCelsius, Value: v,
		}
		if err := agg.Fold(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	agg.Finalize()
	engine := NewEngine(agg, nil)

	cases := []struct {
		name string
		want float64
	}{
		{StatAverage, 15},
		{StatMin, 10},
		{StatMax, 20},
		{StatCount, 2},
		{StatPopulationStdDev, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rows := engine.Rows(&Request{Name: c.name, Sort: SortValueDesc, K: KAll})
			if len(rows) != 1 {
				t.Fatalf("incorrect row count: got %d want 1", len(rows))
			}
			if rows[0].Value != c.want {
				t.Errorf("incorrect value: got %v want %v", rows[0].Value, c.want)
			}
			if rows[0].Unit != data.UnitCelsius {
				t.Errorf("incorrect unit: got %v", rows[0].Unit)
			}
		})
	}
}

func TestRowsAnomalyCount(t *testing.T) {
	agg := aggregate.NewAggregator()
	values := []float64{5, 5, 5}
	readings := make([]*data.Reading, 0, len(values))
	for _, v := range values {
		readings = append(readings, &data.Reading{
			Site: "site_1", Device: "dev_1",
			Metric: data.MetricTemperature, Unit: data.UnitCelsius, Value: v,
		})
	}
	for _, r := range readings {
		if err := agg.Fold(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	agg.Finalize()
	counter := aggregate.NewAnomalyCounter(agg)
	for _, r := range readings {
		counter.Observe(r)
	}

	engine := NewEngine(agg, counter)
	rows := engine.Rows(&Request{Name: StatAnomalyCount, Sort: SortValueDesc, K: KAll})
	if len(rows) != 1 {
		t.Fatalf("incorrect row count: got %d want 1", len(rows))
	}
	if rows[0].Value != 0 {
		t.Errorf("incorrect anomaly count: got %v want 0", rows[0].Value)
	}
}
