package utils

import (
	"testing"
	"time"
)

func TestIsIn(t *testing.T) {
	arr := []string{"site_1", "site_2"}
	if !IsIn("site_1", arr) {
		t.Errorf("expected site_1 to be found")
	}
	if IsIn("Site_1", arr) {
		t.Errorf("matching should be case-sensitive")
	}
	if IsIn("site_3", arr) {
		t.Errorf("expected site_3 to be missing")
	}
	if IsIn("site_1", nil) {
		t.Errorf("nothing should be found in an empty slice")
	}
}

func TestParseUTCTime(t *testing.T) {
	cases := []struct {
		desc    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			desc: "valid time parsed as UTC",
			in:   "2024-03-01 12:30:00",
			want: time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			desc:    "RFC3339 is not the window layout",
			in:      "2024-03-01T12:30:00Z",
			wantErr: true,
		},
		{
			desc:    "date only is rejected",
			in:      "2024-03-01",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			got, err := ParseUTCTime(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("unexpected lack of error")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: got %v", err)
			} else if !got.Equal(c.want) {
				t.Errorf("incorrect time: got %v want %v", got, c.want)
			}
		})
	}
}
