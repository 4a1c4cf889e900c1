package kpicard

import (
	"fmt"
	"strconv"
)

type Trend string

const (
	TrendNone    Trend = ""
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

func (t Trend) Glyph() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	case TrendNone:
		return ""
	default:
		return "•"
	}
}

// ColorVar names the palette CSS variable for the trend.
func (t Trend) ColorVar() string {
	switch t {
	case TrendUp:
		return "--color-positive"
	case TrendDown:
		return "--color-negative"
	default:
		return "--color-neutral"
	}
}

type CardProps struct {
	Title      string
	Value      string
	SubValue   string
	Trend      Trend
	TrendValue string
	Icon       string
	Class      string
}

// ValueOf renders a card value. Numbers are printed plainly, without
// grouping.
func ValueOf(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
