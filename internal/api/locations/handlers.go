// internal/api/locations/handlers.go
package locations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/api/apiutil"
	"github.com/codr1/bizpulse/internal/catalog"
	"github.com/codr1/bizpulse/internal/metrics"
	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/nav"
	"github.com/codr1/bizpulse/internal/report"
	"github.com/codr1/bizpulse/internal/request"
	"github.com/codr1/bizpulse/internal/templates/components/charts"
	"github.com/codr1/bizpulse/internal/templates/components/kpicard"
	locationtempl "github.com/codr1/bizpulse/internal/templates/components/location"
	"github.com/codr1/bizpulse/internal/templates/layouts"
)

const (
	locationQueryTimeout = 5 * time.Second
	xlsxContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	provider catalog.Provider
	palette  = models.DefaultPalette()
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(p catalog.Provider, themePalette models.Palette) {
	if p == nil {
		log.Warn().Msg("InitHandlers called with nil provider; location handlers will be unavailable")
		return
	}
	provider = p
	palette = themePalette.WithDefaults()
}

// HandleLocationPage renders GET /location/{id}.
func HandleLocationPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	timeRange, err := request.TimeRangeFromRequest(r)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest("Invalid time range", err))
		return
	}

	loc, ok := loadLocation(w, r)
	if !ok {
		return
	}

	metrics.IncLocationView(loc.ID)
	logger.Debug().Str("location_id", loc.ID).Str("range", string(timeRange)).Msg("Rendering location detail")

	page := layouts.Base(layouts.Page{
		Title:   loc.Name,
		Active:  nav.ActiveRoute(r.URL.Path),
		Palette: palette,
	}, locationtempl.LocationDetail(buildDetailData(loc, timeRange)))
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render location page", "Failed to render page")
}

// HandleLocationExport serves GET /location/{id}/export.xlsx.
func HandleLocationExport(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	loc, ok := loadLocation(w, r)
	if !ok {
		return
	}

	f, err := report.LocationWorkbook(loc)
	if err != nil {
		apiutil.WriteError(w, r, reportError(loc.ID, err))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		apiutil.WriteError(w, r, reportError(loc.ID, err))
		return
	}

	metrics.IncReportExport()
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="location-%s.xlsx"`, exportFileID(loc.ID)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error().Err(err).Msg("Failed to write response")
	}
}

// loadLocation resolves the {id} path value. On failure it has already
// written the response.
func loadLocation(w http.ResponseWriter, r *http.Request) (models.Location, bool) {
	logger := log.Ctx(r.Context())

	p := provider
	if p == nil {
		logger.Error().Msg("Location provider not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return models.Location{}, false
	}

	id, ok := request.LocationID(r)
	if !ok {
		renderNotFound(w, r, "")
		return models.Location{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), locationQueryTimeout)
	defer cancel()

	loc, err := p.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrLocationNotFound) {
			renderNotFound(w, r, id)
			return models.Location{}, false
		}
		logger.Error().Err(err).Str("location_id", id).Msg("Failed to load location")
		http.Error(w, "Failed to load location", http.StatusInternalServerError)
		return models.Location{}, false
	}
	return loc, true
}

func renderNotFound(w http.ResponseWriter, r *http.Request, id string) {
	metrics.IncLocationNotFound()
	log.Ctx(r.Context()).Info().Str("location_id", id).Msg("Location not found")

	page := layouts.Base(layouts.Page{
		Title:   "Location not found",
		Active:  nav.ActiveRoute(r.URL.Path),
		Palette: palette,
	}, locationtempl.LocationNotFound())
	apiutil.RenderHTMLComponentStatus(r.Context(), w, http.StatusNotFound, page, nil, "Failed to render location not found page", "Location not found")
}

func buildDetailData(loc models.Location, selected models.TimeRange) locationtempl.DetailData {
	ranges := models.TimeRanges()
	options := make([]locationtempl.RangeOption, 0, len(ranges))
	for _, r := range ranges {
		options = append(options, locationtempl.RangeOption{
			Value:    string(r),
			Label:    r.Label(),
			Selected: r == selected,
		})
	}

	points := make([]charts.Point, 0, len(loc.DailyBookings))
	for _, booking := range loc.DailyBookings {
		points = append(points, charts.Point{Label: booking.Day.String(), Value: booking.Hours})
	}

	return locationtempl.DetailData{
		ID:           loc.ID,
		Name:         loc.Name,
		City:         loc.City,
		Href:         nav.LocationHref(loc.ID),
		ExportHref:   nav.LocationExportHref(loc.ID),
		RangeOptions: options,
		Revenue: locationtempl.MetricGroup{
			Title: "Revenue Metrics",
			Headline: kpicard.CardProps{
				Title: "All Time Revenue",
				Value: models.FormatCurrency(loc.Revenue.AllTime),
				Icon:  "dollar-sign",
				Class: "kpi-card--headline",
			},
			Secondary: []kpicard.CardProps{
				{
					Title:      "Last Week",
					Value:      models.FormatCurrency(loc.Revenue.LastWeek),
					Icon:       "dollar-sign",
					Trend:      kpicard.TrendUp,
					TrendValue: "4%",
				},
				{
					Title:      "Last Month",
					Value:      models.FormatCurrency(loc.Revenue.LastMonth),
					Icon:       "dollar-sign",
					Trend:      kpicard.TrendDown,
					TrendValue: "1.2%",
				},
			},
		},
		Volume: locationtempl.MetricGroup{
			Title: "Booking Volume",
			Headline: kpicard.CardProps{
				Title: "Total Hours",
				Value: kpicard.ValueOf(loc.HoursBooked.AllTime),
				Icon:  "clock",
				Class: "kpi-card--headline",
			},
			Secondary: []kpicard.CardProps{
				{
					Title:      "Last Week",
					Value:      kpicard.ValueOf(loc.HoursBooked.LastWeek),
					Icon:       "clock",
					Trend:      kpicard.TrendUp,
					TrendValue: "8%",
				},
				{
					Title:      "Last Month",
					Value:      kpicard.ValueOf(loc.HoursBooked.LastMonth),
					Icon:       "clock",
					Trend:      kpicard.TrendUp,
					TrendValue: "12%",
				},
			},
		},
		Grade: locationtempl.Grade{
			Letter:   "A",
			Headline: "Top Performer",
			Note:     "Top 10% of all locations",
			Percent:  0.75,
		},
		DailyPoints:        points,
		AverageWeeklyHours: models.AverageWeeklyHours(loc.TotalHours),
		Palette:            palette,
	}
}

func reportError(id string, err error) apiutil.HandlerError {
	return apiutil.HandlerError{
		Status:  http.StatusInternalServerError,
		Message: "Failed to build report",
		Err:     fmt.Errorf("location %s workbook: %w", id, err),
	}
}

// exportFileID keeps the download name to characters safe in a header.
func exportFileID(id string) string {
	out := make([]rune, 0, len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
