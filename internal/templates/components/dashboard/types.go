package dashboard

import (
	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/templates/components/kpicard"
)

type LocationSummary struct {
	ID         string
	Name       string
	City       string
	TotalHours float64
	Href       string
}

type SortOption struct {
	Value    models.SortOrder
	Label    string
	Selected bool
}

type DashboardData struct {
	LastUpdated  string
	SummaryCards []kpicard.CardProps
	SortOrder    models.SortOrder
	SortOptions  []SortOption
	Locations    []LocationSummary
	Palette      models.Palette
}
