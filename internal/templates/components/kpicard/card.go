package kpicard

import (
	"github.com/a-h/templ"

	"github.com/codr1/bizpulse/internal/templates/components/icons"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

// Card renders a single-metric summary. The trend region is omitted when
// both SubValue and TrendValue are empty; the glyph is omitted when Trend is
// TrendNone.
func Card(props CardProps) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="kpi-card`)
		if props.Class != "" {
			w.Raw(" " + markup.Attr(props.Class))
		}
		w.Raw(`">`)

		w.Raw(`<div class="kpi-card__header"><h3 class="kpi-card__title">`)
		w.Text(props.Title)
		w.Raw(`</h3><div class="kpi-card__icon">`)
		w.Component(icons.Icon(props.Icon, "icon--sm"))
		w.Raw(`</div></div>`)

		w.Raw(`<div class="kpi-card__value">`)
		w.Text(props.Value)
		w.Raw(`</div>`)

		if props.SubValue != "" || props.TrendValue != "" {
			w.Raw(`<p class="kpi-card__trend">`)
			if props.Trend != TrendNone {
				w.Rawf(`<span class="trend trend--%s" style="color:var(%s)">`, markup.Attr(string(props.Trend)), props.Trend.ColorVar())
				w.Text(props.Trend.Glyph())
				w.Raw(" ")
				w.Text(props.TrendValue)
				w.Raw(`</span>`)
			}
			w.Raw(`<span class="kpi-card__sub">`)
			w.Text(props.SubValue)
			w.Raw(`</span></p>`)
		}

		w.Raw(`</div>`)
	})
}
