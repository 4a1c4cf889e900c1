// internal/api/dashboard/handlers.go
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/api/apiutil"
	"github.com/codr1/bizpulse/internal/api/htmx"
	"github.com/codr1/bizpulse/internal/catalog"
	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/nav"
	"github.com/codr1/bizpulse/internal/request"
	dashboardtempl "github.com/codr1/bizpulse/internal/templates/components/dashboard"
	"github.com/codr1/bizpulse/internal/templates/components/kpicard"
	"github.com/codr1/bizpulse/internal/templates/layouts"
)

const (
	dashboardQueryTimeout = 5 * time.Second
	lastUpdatedLabel      = "Today, 9:00 AM"
)

var (
	provider catalog.Provider
	palette  = models.DefaultPalette()
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(p catalog.Provider, themePalette models.Palette) {
	if p == nil {
		log.Warn().Msg("InitHandlers called with nil provider; dashboard handlers will be unavailable")
		return
	}
	provider = p
	palette = themePalette.WithDefaults()
}

// HandleDashboardPage renders the overview page for GET /.
func HandleDashboardPage(w http.ResponseWriter, r *http.Request) {
	order, err := request.SortOrderFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest("Invalid sort order", err))
		return
	}

	data, ok := loadDashboardData(w, r, order)
	if !ok {
		return
	}

	page := layouts.Base(layouts.Page{
		Title:   "Dashboard",
		Active:  nav.RouteOverview,
		Palette: palette,
	}, dashboardtempl.DashboardLayout(data))
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render dashboard page", "Failed to render page")
}

// HandleLocationPerformance returns the sortable performance section for
// GET /api/v1/dashboard/locations.
func HandleLocationPerformance(w http.ResponseWriter, r *http.Request) {
	order, err := request.SortOrderFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest("Invalid sort order", err))
		return
	}

	data, ok := loadDashboardData(w, r, order)
	if !ok {
		return
	}

	var headers map[string]string
	if htmx.IsRequest(r) {
		headers = map[string]string{"HX-Push-Url": overviewURL(order)}
	}
	apiutil.RenderHTMLComponent(r.Context(), w, dashboardtempl.LocationPerformance(data), headers, "Failed to render location performance", "Failed to render locations")
}

// HandleNotFound renders the shell with a not-found view for any path
// without a registered route.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("No route for path")

	page := layouts.Base(layouts.Page{
		Title:   "Not Found",
		Active:  nav.ActiveRoute(r.URL.Path),
		Palette: palette,
	}, layouts.NotFound())
	apiutil.RenderHTMLComponentStatus(r.Context(), w, http.StatusNotFound, page, nil, "Failed to render not found page", "Page not found")
}

func loadDashboardData(w http.ResponseWriter, r *http.Request, order models.SortOrder) (dashboardtempl.DashboardData, bool) {
	logger := log.Ctx(r.Context())

	p := provider
	if p == nil {
		logger.Error().Msg("Location provider not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return dashboardtempl.DashboardData{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), dashboardQueryTimeout)
	defer cancel()

	data, err := buildDashboardData(ctx, p, order)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.HandlerError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to load dashboard",
			Err:     fmt.Errorf("sort %s: %w", order, err),
		})
		return dashboardtempl.DashboardData{}, false
	}
	return data, true
}

func buildDashboardData(ctx context.Context, p catalog.Provider, order models.SortOrder) (dashboardtempl.DashboardData, error) {
	locations, err := p.ListLocations(ctx)
	if err != nil {
		return dashboardtempl.DashboardData{}, fmt.Errorf("list locations: %w", err)
	}

	sorted := models.SortByTotalHours(locations, order)
	summaries := make([]dashboardtempl.LocationSummary, 0, len(sorted))
	for _, loc := range sorted {
		summaries = append(summaries, dashboardtempl.LocationSummary{
			ID:         loc.ID,
			Name:       loc.Name,
			City:       loc.City,
			TotalHours: loc.TotalHours,
			Href:       nav.LocationHref(loc.ID),
		})
	}

	return dashboardtempl.DashboardData{
		LastUpdated:  lastUpdatedLabel,
		SummaryCards: summaryCards(),
		SortOrder:    order,
		SortOptions:  sortOptions(order),
		Locations:    summaries,
		Palette:      palette,
	}, nil
}

// summaryCards are fixed headline figures, not derived from the catalogue.
func summaryCards() []kpicard.CardProps {
	return []kpicard.CardProps{
		{
			Title:      "Total Revenue",
			Value:      models.FormatCurrency(458500),
			Trend:      kpicard.TrendUp,
			TrendValue: "12%",
			SubValue:   "vs last month",
			Icon:       "dollar-sign",
		},
		{
			Title:      "Hours Booked",
			Value:      models.FormatNumber(4900),
			Trend:      kpicard.TrendUp,
			TrendValue: "5%",
			SubValue:   "vs last month",
			Icon:       "clock",
		},
		{
			Title:    "Active Locations",
			Value:    kpicard.ValueOf(5),
			Trend:    kpicard.TrendNeutral,
			SubValue: "Across 4 states",
			Icon:     "users",
		},
		{
			Title:      "Avg. Occupancy",
			Value:      "78%",
			Trend:      kpicard.TrendDown,
			TrendValue: "2%",
			SubValue:   "vs last month",
			Icon:       "trending-up",
		},
	}
}

func sortOptions(selected models.SortOrder) []dashboardtempl.SortOption {
	orders := []models.SortOrder{models.SortDescending, models.SortAscending}
	options := make([]dashboardtempl.SortOption, 0, len(orders))
	for _, order := range orders {
		options = append(options, dashboardtempl.SortOption{
			Value:    order,
			Label:    order.Label(),
			Selected: order == selected,
		})
	}
	return options
}

func overviewURL(order models.SortOrder) string {
	if order == models.SortDescending {
		return "/"
	}
	return "/?" + url.Values{"sort": {string(order)}}.Encode()
}
