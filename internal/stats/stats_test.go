package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codr1/bizpulse/internal/models"
)

const sampleCSV = `date,slug,city,day_of_week,max_total_booked_hours
2024-01-01,tempe,Tempe,Monday,10
2024-01-08,tempe,Tempe,Monday,12
2024-01-02,tempe,Tempe,Tuesday,7.333
2024-01-03,austin,Austin,Wednesday,5
2024-01-04,,Nowhere,Thursday,9
2024-01-05,austin,Austin,Friday,n/a
2024-01-06,austin,Austin,,3
`

func TestReadDailyMaxSkipsBadRows(t *testing.T) {
	rows, err := ReadDailyMax(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0].Slug != "tempe" || !rows[0].HasDay || rows[0].Day != models.Monday || rows[0].Hours != 10 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[4].HasDay {
		t.Fatalf("expected blank weekday to be unset: %+v", rows[4])
	}
}

func TestReadDailyMaxStripsByteOrderMark(t *testing.T) {
	rows, err := ReadDailyMax(strings.NewReader("\uFEFFslug,day_of_week,max_total_booked_hours\ntempe,Monday,4\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 1 || rows[0].Slug != "tempe" || rows[0].Hours != 4 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestReadDailyMaxRequiresColumns(t *testing.T) {
	if _, err := ReadDailyMax(strings.NewReader("slug,day_of_week\nx,Monday\n")); err == nil {
		t.Fatalf("expected error for missing hours column")
	}
	if _, err := ReadDailyMax(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestSummarize(t *testing.T) {
	rows, err := ReadDailyMax(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	stats := Summarize(rows)
	if len(stats) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(stats))
	}
	if stats[0].Slug != "austin" || stats[1].Slug != "tempe" {
		t.Fatalf("expected slug order austin, tempe; got %s, %s", stats[0].Slug, stats[1].Slug)
	}

	austin := stats[0]
	if austin.AvgDailyMax != 4 {
		t.Fatalf("austin overall = %v, want 4", austin.AvgDailyMax)
	}
	if austin.WeekdayAvgMax[models.Wednesday] == nil || *austin.WeekdayAvgMax[models.Wednesday] != 5 {
		t.Fatalf("austin wednesday = %v, want 5", austin.WeekdayAvgMax[models.Wednesday])
	}
	if austin.WeekdayAvgMax[models.Monday] != nil {
		t.Fatalf("austin monday should be missing")
	}

	tempe := stats[1]
	if tempe.AvgDailyMax != 9.78 {
		t.Fatalf("tempe overall = %v, want 9.78", tempe.AvgDailyMax)
	}
	if *tempe.WeekdayAvgMax[models.Monday] != 11 {
		t.Fatalf("tempe monday = %v, want 11", *tempe.WeekdayAvgMax[models.Monday])
	}
	if *tempe.WeekdayAvgMax[models.Tuesday] != 7.33 {
		t.Fatalf("tempe tuesday = %v, want 7.33", *tempe.WeekdayAvgMax[models.Tuesday])
	}
}

func TestWriteCSV(t *testing.T) {
	rows, err := ReadDailyMax(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, Summarize(rows)); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	wantHeader := "slug,number_of_bays,average_hours_perbay,avg_daily_max_hours,avg_mon_max_hours,avg_tue_max_hours,avg_wed_max_hours,avg_thu_max_hours,avg_fri_max_hours,avg_sat_max_hours,avg_sun_max_hours"
	if lines[0] != wantHeader {
		t.Fatalf("header = %s", lines[0])
	}
	if lines[1] != "austin,,,4.0,,,5.0,,,," {
		t.Fatalf("austin row = %s", lines[1])
	}
	if lines[2] != "tempe,,,9.78,11.0,7.33,,,,," {
		t.Fatalf("tempe row = %s", lines[2])
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 9.7776, want: 9.78},
		{in: 0.125, want: 0.12},
		{in: 0.375, want: 0.38},
		{in: 2.675, want: 2.67},
		{in: 11, want: 11},
	}
	for _, test := range tests {
		if got := round2(test.in); got != test.want {
			t.Errorf("round2(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 12, want: "12.0"},
		{in: 0, want: "0.0"},
		{in: 7.33, want: "7.33"},
		{in: 5.5, want: "5.5"},
	}
	for _, test := range tests {
		if got := formatHours(test.in); got != test.want {
			t.Errorf("formatHours(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}
