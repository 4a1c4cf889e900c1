package location

import (
	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/templates/components/charts"
	"github.com/codr1/bizpulse/internal/templates/components/kpicard"
)

type RangeOption struct {
	Value    string
	Label    string
	Selected bool
}

// Grade is the performance ring. Percent is the filled share of the ring.
type Grade struct {
	Letter   string
	Headline string
	Note     string
	Percent  float64
}

// MetricGroup is a headline card with two smaller cards beneath it.
type MetricGroup struct {
	Title     string
	Headline  kpicard.CardProps
	Secondary []kpicard.CardProps
}

type DetailData struct {
	ID                 string
	Name               string
	City               string
	Href               string
	ExportHref         string
	RangeOptions       []RangeOption
	Revenue            MetricGroup
	Volume             MetricGroup
	Grade              Grade
	DailyPoints        []charts.Point
	AverageWeeklyHours int
	Palette            models.Palette
}
