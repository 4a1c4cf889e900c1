package models

import (
	"fmt"
	"strings"
)

// TimeRange is the reporting window picked on the location page. It only
// changes which option is selected; the figures shown are fixed periods.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
)

var timeRanges = []TimeRange{RangeWeek, RangeMonth, RangeQuarter, RangeYear}

func TimeRanges() []TimeRange {
	out := make([]TimeRange, len(timeRanges))
	copy(out, timeRanges)
	return out
}

// ParseTimeRange maps an empty value to RangeWeek.
func ParseTimeRange(raw string) (TimeRange, error) {
	value := TimeRange(strings.ToLower(strings.TrimSpace(raw)))
	if value == "" {
		return RangeWeek, nil
	}
	for _, r := range timeRanges {
		if value == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid time range %q", raw)
}

func (r TimeRange) Label() string {
	switch r {
	case RangeMonth:
		return "This Month"
	case RangeQuarter:
		return "This Quarter"
	case RangeYear:
		return "This Year"
	default:
		return "This Week"
	}
}
