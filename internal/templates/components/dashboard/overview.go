package dashboard

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/codr1/bizpulse/internal/templates/components/charts"
	"github.com/codr1/bizpulse/internal/templates/components/icons"
	"github.com/codr1/bizpulse/internal/templates/components/kpicard"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

const PerformanceSectionID = "location-performance"

// DashboardLayout is the overview page body.
func DashboardLayout(data DashboardData) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="page">`)
		w.Raw(`<div class="page-header"><div><h1>Dashboard</h1>`)
		w.Raw(`<p class="muted">Overview of location performance and booking metrics.</p></div>`)
		w.Raw(`<span class="muted">Last updated: `)
		w.Text(data.LastUpdated)
		w.Raw(`</span></div>`)

		w.Raw(`<div class="grid grid--4 summary">`)
		for _, card := range data.SummaryCards {
			w.Component(kpicard.Card(card))
		}
		w.Raw(`</div>`)

		w.Component(LocationPerformance(data))
		w.Raw(`</div>`)
	})
}

// LocationPerformance is the sortable chart and card grid. It is also served
// on its own as the htmx target of the sort selector.
func LocationPerformance(data DashboardData) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Rawf(`<section class="card performance" id="%s">`, PerformanceSectionID)
		w.Raw(`<div class="page-header"><div><h2>Location Performance</h2>`)
		w.Raw(`<p class="muted">Total hours booked per location. Click on a bar to view details.</p></div>`)

		w.Rawf(`<form method="get" action="/" hx-get="/api/v1/dashboard/locations" hx-target="#%s" hx-swap="outerHTML" hx-trigger="change">`, PerformanceSectionID)
		w.Raw(`<select name="sort" aria-label="Sort by" onchange="if(!window.htmx)this.form.submit()">`)
		for _, option := range data.SortOptions {
			selected := ""
			if option.Selected {
				selected = " selected"
			}
			w.Rawf(`<option value="%s"%s>`, markup.Attr(string(option.Value)), selected)
			w.Text(option.Label)
			w.Raw(`</option>`)
		}
		w.Raw(`</select><noscript><button type="submit">Apply</button></noscript></form></div>`)

		bars := make([]charts.Bar, 0, len(data.Locations))
		for _, loc := range data.Locations {
			bars = append(bars, charts.Bar{
				Label: loc.Name,
				Value: loc.TotalHours,
				Href:  loc.Href,
				Title: fmt.Sprintf("%s: %s Hours Booked", loc.Name, kpicard.ValueOf(loc.TotalHours)),
			})
		}
		w.Component(charts.BarChart(bars, data.Palette))

		w.Raw(`<div class="grid grid--5 location-grid">`)
		for _, loc := range data.Locations {
			w.Rawf(`<a class="location-card" href="%s">`, markup.URL(loc.Href))
			w.Raw(`<div class="page-header"><h3>`)
			w.Text(loc.City)
			w.Raw(`</h3>`)
			w.Component(icons.Icon("arrow-right", "icon--sm"))
			w.Raw(`</div><p class="location-card__value">`)
			w.Text(kpicard.ValueOf(loc.TotalHours))
			w.Raw(`</p><p class="muted">hours booked</p></a>`)
		}
		w.Raw(`</div></section>`)
	})
}
