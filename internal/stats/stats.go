// Package stats summarises daily maximum booked hours per location.
package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/codr1/bizpulse/internal/models"
)

const (
	columnSlug     = "slug"
	columnWeekday  = "day_of_week"
	columnMaxHours = "max_total_booked_hours"
)

// DailyMaxRow is one day's maximum booked hours for a location. Day is
// unset (HasDay false) when the row had no recognisable weekday.
type DailyMaxRow struct {
	Slug   string
	Day    models.Weekday
	HasDay bool
	Hours  float64
}

// LocationStats holds the averages for one slug. A weekday without samples
// has a nil entry.
type LocationStats struct {
	Slug          string
	AvgDailyMax   float64
	WeekdayAvgMax [models.DaysPerWeek]*float64
}

// Header is the column layout of WriteCSV and the XLSX report.
func Header() []string {
	header := []string{columnSlug, "number_of_bays", "average_hours_perbay", "avg_daily_max_hours"}
	for _, day := range models.Weekdays() {
		header = append(header, fmt.Sprintf("avg_%s_max_hours", strings.ToLower(day.String())))
	}
	return header
}

// ReadDailyMax reads the daily max export. Rows with a blank slug or hours
// that do not parse are skipped.
func ReadDailyMax(r io.Reader) ([]DailyMaxRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading header: empty input")
		}
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	for _, required := range []string{columnSlug, columnMaxHours} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []DailyMaxRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading row: %w", err)
		}

		slug := field(record, columnSlug)
		hours, err := strconv.ParseFloat(field(record, columnMaxHours), 64)
		if slug == "" || err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
			continue
		}

		row := DailyMaxRow{Slug: slug, Hours: hours}
		if day, ok := models.ParseWeekday(field(record, columnWeekday)); ok {
			row.Day = day
			row.HasDay = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Summarize averages rows per slug, sorted by slug. Averages are rounded to
// two decimals.
func Summarize(rows []DailyMaxRow) []LocationStats {
	type accumulator struct {
		sum      float64
		count    int
		daySum   [models.DaysPerWeek]float64
		dayCount [models.DaysPerWeek]int
	}

	bySlug := make(map[string]*accumulator)
	for _, row := range rows {
		acc := bySlug[row.Slug]
		if acc == nil {
			acc = &accumulator{}
			bySlug[row.Slug] = acc
		}
		acc.sum += row.Hours
		acc.count++
		if row.HasDay {
			acc.daySum[row.Day] += row.Hours
			acc.dayCount[row.Day]++
		}
	}

	slugs := make([]string, 0, len(bySlug))
	for slug := range bySlug {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	out := make([]LocationStats, 0, len(slugs))
	for _, slug := range slugs {
		acc := bySlug[slug]
		stats := LocationStats{Slug: slug, AvgDailyMax: round2(acc.sum / float64(acc.count))}
		for day := range acc.daySum {
			if acc.dayCount[day] == 0 {
				continue
			}
			avg := round2(acc.daySum[day] / float64(acc.dayCount[day]))
			stats.WeekdayAvgMax[day] = &avg
		}
		out = append(out, stats)
	}
	return out
}

// Record lays out one row to match Header. The bays columns are left blank
// for manual entry.
func (s LocationStats) Record() []string {
	record := []string{s.Slug, "", "", formatHours(s.AvgDailyMax)}
	for _, avg := range s.WeekdayAvgMax {
		if avg == nil {
			record = append(record, "")
			continue
		}
		record = append(record, formatHours(*avg))
	}
	return record
}

// WriteCSV writes Header followed by one row per location.
func WriteCSV(w io.Writer, stats []LocationStats) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for _, s := range stats {
		if err := writer.Write(s.Record()); err != nil {
			return fmt.Errorf("error writing %s: %w", s.Slug, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// round2 rounds to two decimals from the exact binary value, with exact
// ties going to the even digit.
func round2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// formatHours prints the shortest form that round-trips, always keeping a
// fractional part: 12 -> "12.0", 7.33 -> "7.33".
func formatHours(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(out, ".nN") {
		out += ".0"
	}
	return out
}
