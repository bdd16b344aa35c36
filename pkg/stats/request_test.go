package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRequest(t *testing.T) {
	cases := []struct {
		desc     string
		in       string
		want     *Request
		wantCode ConfigErrorCode
		wantErr  bool
	}{
		{
			desc: "bare name uses defaults",
			in:   "average",
			want: &Request{Name: "average", Label: "average", Sort: SortValueDesc, K: DefaultK},
		},
		{
			desc: "sort ascending",
			in:   "average:sort=value_asc",
			want: &Request{Name: "average", Label: "average", Sort: SortValueAsc, K: DefaultK},
		},
		{
			desc: "group key order",
			in:   "count:sort=group_key_order",
			want: &Request{Name: "count", Label: "count", Sort: SortGroupKeyOrder, K: DefaultK},
		},
		{
			desc: "explicit k",
			in:   "max:k=3",
			want: &Request{Name: "max", Label: "max", Sort: SortValueDesc, K: 3},
		},
		{
			desc: "k all",
			in:   "min:k=all",
			want: &Request{Name: "min", Label: "min", Sort: SortValueDesc, K: KAll},
		},
		{
			desc: "multiple options",
			in:   "average:sort=value_asc,k=1",
			want: &Request{Name: "average", Label: "average", Sort: SortValueAsc, K: 1},
		},
		{
			desc: "name option relabels",
			in:   "population_stddev:name=spread",
			want: &Request{Name: "population_stddev", Label: "spread", Sort: SortValueDesc, K: DefaultK},
		},
		{
			desc:     "unknown statistic",
			in:       "median",
			wantErr:  true,
			wantCode: UnknownStatistic,
		},
		{
			desc:     "unknown option key",
			in:       "average:limit=3",
			wantErr:  true,
			wantCode: UnknownOption,
		},
		{
			desc:     "option without value",
			in:       "average:sort",
			wantErr:  true,
			wantCode: UnknownOption,
		},
		{
			desc:     "unknown sort order",
			in:       "average:sort=alphabetical",
			wantErr:  true,
			wantCode: UnknownOption,
		},
		{
			desc:     "zero k",
			in:       "average:k=0",
			wantErr:  true,
			wantCode: InvalidK,
		},
		{
			desc:     "negative k",
			in:       "average:k=-2",
			wantErr:  true,
			wantCode: InvalidK,
		},
		{
			desc:     "non-numeric k",
			in:       "average:k=few",
			wantErr:  true,
			wantCode: InvalidK,
		},
		{
			desc:     "anomaly_count is registered",
			in:       "anomaly_count",
			want:     &Request{Name: "anomaly_count", Label: "anomaly_count", Sort: SortValueDesc, K: DefaultK},
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			got, err := ParseRequest(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("unexpected lack of error")
				}
				cerr, ok := err.(*ConfigError)
				if !ok {
					t.Fatalf("incorrect error type: got %T", err)
				}
				if cerr.Code != c.wantCode {
					t.Errorf("incorrect code: got %v want %v", cerr.Code, c.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("incorrect request (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRequestsFailsFast(t *testing.T) {
	_, err := ParseRequests([]string{"average", "median"})
	if err == nil {
		t.Fatalf("unexpected lack of error")
	}
	reqs, err := ParseRequests([]string{"average", "count:k=all"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 2 {
		t.Errorf("incorrect request count: got %d want 2", len(reqs))
	}
}

func TestNeedsSecondPass(t *testing.T) {
	one := &Request{Name: StatAverage}
	two := &Request{Name: StatAnomalyCount}
	if NeedsSecondPass([]*Request{one}) {
		t.Errorf("average alone must not need a second pass")
	}
	if !NeedsSecondPass([]*Request{one, two}) {
		t.Errorf("anomaly_count must need a second pass")
	}
	if NeedsSecondPass(nil) {
		t.Errorf("no requests, no second pass")
	}
}
