package location

import (
	"math"

	"github.com/a-h/templ"

	"github.com/codr1/bizpulse/internal/templates/components/charts"
	"github.com/codr1/bizpulse/internal/templates/components/icons"
	"github.com/codr1/bizpulse/internal/templates/components/kpicard"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

const gradeRingRadius = 45

func LocationDetail(data DetailData) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="page location-detail">`)

		w.Raw(`<a href="/" class="back-link muted">`)
		w.Component(icons.Icon("arrow-left", "icon--sm"))
		w.Raw(`Back to Dashboard</a>`)

		w.Raw(`<div class="page-header"><div><h1>`)
		w.Text(data.Name)
		w.Raw(` <span class="badge">Active</span></h1><p class="muted">`)
		w.Component(icons.Icon("map-pin", "icon--sm"))
		w.Text(data.City)
		w.Raw(` • ID: #`)
		w.Text(data.ID)
		w.Raw(`</p></div><div class="page-actions">`)

		w.Rawf(`<form method="get" action="%s">`, markup.URL(data.Href))
		w.Raw(`<select name="range" aria-label="Select Range" onchange="this.form.submit()">`)
		for _, option := range data.RangeOptions {
			selected := ""
			if option.Selected {
				selected = " selected"
			}
			w.Rawf(`<option value="%s"%s>`, markup.Attr(option.Value), selected)
			w.Text(option.Label)
			w.Raw(`</option>`)
		}
		w.Raw(`</select></form>`)
		if data.ExportHref != "" {
			w.Rawf(`<a class="export-link" href="%s" download>Download report</a>`, markup.URL(data.ExportHref))
		}
		w.Raw(`</div></div>`)

		w.Raw(`<div class="grid grid--3">`)
		w.Component(metricGroup(data.Revenue))
		w.Component(metricGroup(data.Volume))
		w.Component(gradeColumn(data.Grade))
		w.Raw(`</div><hr>`)

		w.Raw(`<section class="card daily-engagement"><div class="page-header"><div><h2>Daily Engagement</h2>`)
		w.Raw(`<p class="muted">Number of hours booked per day of the week.</p></div><span>`)
		w.Component(icons.Icon("calendar", "icon--sm"))
		w.Rawf(`Average: %d hrs/week</span></div>`, data.AverageWeeklyHours)
		w.Component(charts.AreaChart(data.DailyPoints, data.Palette))
		w.Raw(`</section>`)

		w.Raw(`</div>`)
	})
}

// LocationNotFound is shown when the requested id is not in the catalogue.
func LocationNotFound() templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="not-found"><h2>Location not found</h2>`)
		w.Raw(`<a href="/">Return to Dashboard</a></div>`)
	})
}

func metricGroup(group MetricGroup) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="metric-group"><h3 class="section-title">`)
		w.Text(group.Title)
		w.Raw(`</h3>`)
		w.Component(kpicard.Card(group.Headline))
		w.Raw(`<div class="grid grid--2">`)
		for _, card := range group.Secondary {
			w.Component(kpicard.Card(card))
		}
		w.Raw(`</div></div>`)
	})
}

func gradeColumn(grade Grade) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		circumference := 2 * math.Pi * gradeRingRadius
		offset := circumference * (1 - math.Max(0, math.Min(1, grade.Percent)))

		w.Raw(`<div class="metric-group"><h3 class="section-title">Performance Score</h3>`)
		w.Raw(`<div class="card grade">`)
		w.Raw(`<svg class="grade__ring" viewBox="0 0 100 100" width="128" height="128">`)
		w.Rawf(`<circle cx="50" cy="50" r="%d" fill="none" stroke="#e5e7eb" stroke-width="8"/>`, gradeRingRadius)
		w.Rawf(`<circle cx="50" cy="50" r="%d" fill="none" stroke="var(--color-primary)" stroke-width="8" stroke-dasharray="%.0f" stroke-dashoffset="%.0f" transform="rotate(-90 50 50)"/>`,
			gradeRingRadius, circumference, offset)
		w.Raw(`<text x="50" y="52" text-anchor="middle" font-size="28" font-weight="700">`)
		w.Text(grade.Letter)
		w.Raw(`</text><text x="50" y="68" text-anchor="middle" font-size="8" fill="#64748b">GRADE</text></svg>`)
		w.Raw(`<p class="grade__headline">`)
		w.Text(grade.Headline)
		w.Raw(`</p><p class="muted">`)
		w.Text(grade.Note)
		w.Raw(`</p></div></div>`)
	})
}
