package models

import "testing"

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		raw     string
		want    TimeRange
		wantErr bool
	}{
		{raw: "", want: RangeWeek},
		{raw: "week", want: RangeWeek},
		{raw: " Month ", want: RangeMonth},
		{raw: "quarter", want: RangeQuarter},
		{raw: "YEAR", want: RangeYear},
		{raw: "decade", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseTimeRange(test.raw)
		if test.wantErr {
			if err == nil {
				t.Fatalf("ParseTimeRange(%q): expected error", test.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimeRange(%q): %v", test.raw, err)
		}
		if got != test.want {
			t.Fatalf("ParseTimeRange(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}

func TestTimeRangeLabels(t *testing.T) {
	want := []string{"This Week", "This Month", "This Quarter", "This Year"}
	for i, r := range TimeRanges() {
		if r.Label() != want[i] {
			t.Fatalf("label for %s = %q, want %q", r, r.Label(), want[i])
		}
	}
}
