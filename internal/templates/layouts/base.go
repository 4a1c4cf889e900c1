package layouts

import (
	"github.com/a-h/templ"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/nav"
	navtempl "github.com/codr1/bizpulse/internal/templates/components/nav"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

const defaultTitle = "BizPulse"

// Page carries what Base needs besides the content itself.
type Page struct {
	Title   string
	Active  nav.Route
	Palette models.Palette
}

// Base wraps content in the HTML document, sidebar and content region.
func Base(page Page, content templ.Component) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		title := defaultTitle
		if page.Title != "" {
			title = page.Title + " · " + defaultTitle
		}

		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Raw(`<title>`)
		w.Text(title)
		w.Raw(`</title>`)
		w.Raw(`<style>`)
		w.Raw(getThemeCssVars(page.Palette))
		w.Raw(baseCSS)
		w.Raw(`</style>`)
		w.Raw(`<script src="/static/js/htmx.min.js" defer></script>`)
		w.Raw(`</head><body><div class="shell">`)
		w.Component(navtempl.Menu(page.Active))
		w.Component(navtempl.MenuToggle())
		w.Raw(`<main class="content" id="content">`)
		w.Component(content)
		w.Raw(`</main></div></body></html>`)
	})
}

// NotFound is the content of the generic 404 page.
func NotFound() templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="not-found"><h2>Page not found</h2>`)
		w.Raw(`<a href="/">Return to Dashboard</a></div>`)
	})
}
