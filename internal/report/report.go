// Package report builds XLSX workbooks for location exports and the offline
// stats summary.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/stats"
)

const (
	LocationSheet = "Location"
	StatsSheet    = "Daily Max"

	headerFill = "#DDEBF7"
	labelFill  = "#E2EFDA"
)

// LocationWorkbook lays out one location's periods and weekly bookings.
// The caller must Close the returned file.
func LocationWorkbook(loc models.Location) (*excelize.File, error) {
	f, err := newWorkbook(LocationSheet)
	if err != nil {
		return nil, err
	}

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating title style: %w", err)
	}
	header, label, err := tableStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := [][]any{
		{loc.Name},
		{"City", loc.City},
		{"ID", loc.ID},
		{"Total Hours", loc.TotalHours},
		{},
		{"Metric", "All Time", "Last Week", "Last Month"},
		{"Revenue", loc.Revenue.AllTime, loc.Revenue.LastWeek, loc.Revenue.LastMonth},
		{"Hours Booked", loc.HoursBooked.AllTime, loc.HoursBooked.LastWeek, loc.HoursBooked.LastMonth},
		{},
		{"Day", "Hours"},
	}
	for _, booking := range loc.DailyBookings {
		rows = append(rows, []any{booking.Day.Name(), booking.Hours})
	}
	if err := writeRows(f, LocationSheet, rows); err != nil {
		f.Close()
		return nil, err
	}

	styles := []struct {
		from, to string
		style    int
	}{
		{"A1", "A1", title},
		{"A2", "A4", label},
		{"A6", "D6", header},
		{"A7", "A8", label},
		{"A10", "B10", header},
	}
	for _, s := range styles {
		if err := f.SetCellStyle(LocationSheet, s.from, s.to, s.style); err != nil {
			f.Close()
			return nil, fmt.Errorf("error styling %s:%s: %w", s.from, s.to, err)
		}
	}
	_ = f.SetColWidth(LocationSheet, "A", "A", 18)
	_ = f.SetColWidth(LocationSheet, "B", "D", 14)
	return f, nil
}

// StatsWorkbook writes the stats table with the same columns as
// stats.WriteCSV. Blank averages stay empty cells.
func StatsWorkbook(summaries []stats.LocationStats) (*excelize.File, error) {
	f, err := newWorkbook(StatsSheet)
	if err != nil {
		return nil, err
	}
	header, _, err := tableStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	headerRow := stats.Header()
	rows := make([][]any, 0, len(summaries)+1)
	rows = append(rows, toAny(headerRow))
	for _, s := range summaries {
		row := []any{s.Slug, nil, nil, s.AvgDailyMax}
		for _, avg := range s.WeekdayAvgMax {
			if avg == nil {
				row = append(row, nil)
				continue
			}
			row = append(row, *avg)
		}
		rows = append(rows, row)
	}
	if err := writeRows(f, StatsSheet, rows); err != nil {
		f.Close()
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headerRow))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error resolving last column: %w", err)
	}
	if err := f.SetCellStyle(StatsSheet, "A1", lastCol+"1", header); err != nil {
		f.Close()
		return nil, fmt.Errorf("error styling header: %w", err)
	}
	_ = f.SetColWidth(StatsSheet, "A", lastCol, 20)
	return f, nil
}

// Write streams f to w.
func Write(w io.Writer, f *excelize.File) error {
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("error removing default sheet: %w", err)
	}
	return f, nil
}

func tableStyles(f *excelize.File) (header, label int, err error) {
	header, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("error creating header style: %w", err)
	}
	label, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{labelFill}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("error creating label style: %w", err)
	}
	return header, label, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("error resolving row %d: %w", i+1, err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
