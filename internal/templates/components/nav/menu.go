package nav

import (
	"github.com/a-h/templ"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/nav"
	"github.com/codr1/bizpulse/internal/templates/components/icons"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

const (
	brandName     = "BizPulse"
	menuPath      = "/api/v1/nav/menu"
	menuClosePath = "/api/v1/nav/menu/close"

	MobileMenuID = "mobile-menu"
)

// Menu renders the sidebar with the item for active marked current.
func Menu(active nav.Route) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<aside class="sidebar" id="sidebar">`)
		w.Raw(`<div class="sidebar__brand">`)
		w.Component(icons.Icon("bar-chart", ""))
		w.Text(brandName)
		w.Raw(`</div>`)

		w.Component(navLinks(active))

		w.Raw(`<div class="sidebar__search">`)
		w.Raw(`<input type="search" name="q" placeholder="Search locations" hx-get="/api/v1/nav/search" hx-trigger="keyup changed delay:300ms" hx-target="#search-results" autocomplete="off">`)
		w.Raw(`<div id="search-results"></div>`)
		w.Raw(`</div>`)

		w.Raw(`<div class="sidebar__user"><div class="avatar">JD</div><div><div>Jane Doe</div><div class="muted">Admin Access</div></div></div>`)
		w.Raw(`</aside>`)
	})
}

// MenuToggle is the narrow-screen header. Its button loads MobileMenu into
// the panel below it.
func MenuToggle() templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<header class="mobile-bar">`)
		w.Raw(`<span class="sidebar__brand">`)
		w.Text(brandName)
		w.Raw(`</span>`)
		w.Rawf(`<button type="button" class="mobile-bar__toggle" aria-label="Open menu" hx-get="%s" hx-target="#%s" hx-swap="innerHTML">`, menuPath, MobileMenuID)
		w.Component(icons.Icon("menu", ""))
		w.Raw(`</button></header>`)
		w.Rawf(`<div id="%s"></div>`, MobileMenuID)
	})
}

// MobileMenu is the panel served by the menu endpoint. Its close button
// swaps the panel for the empty close response.
func MobileMenu(active nav.Route) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<div class="mobile-menu">`)
		w.Rawf(`<button type="button" class="mobile-menu__close" aria-label="Close menu" hx-get="%s" hx-target="#%s" hx-swap="innerHTML">`, menuClosePath, MobileMenuID)
		w.Component(icons.Icon("x", ""))
		w.Raw(`</button>`)
		w.Component(navLinks(active))
		w.Raw(`</div>`)
	})
}

func navLinks(active nav.Route) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		w.Raw(`<nav class="sidebar__nav">`)
		for _, item := range nav.Items() {
			if item.Route == active {
				w.Rawf(`<a href="%s" class="nav-item nav-item--active" aria-current="page">`, markup.URL(item.Href))
			} else {
				w.Rawf(`<a href="%s" class="nav-item">`, markup.URL(item.Href))
			}
			w.Component(icons.Icon(item.Icon, ""))
			w.Text(item.Label)
			w.Raw(`</a>`)
		}
		w.Raw(`</nav>`)
	})
}

// SearchResults lists matching locations as links to their detail pages.
func SearchResults(query string, locations []models.Location) templ.Component {
	return markup.Component(func(w *markup.Writer) {
		if len(locations) == 0 {
			if query != "" {
				w.Raw(`<p class="muted">No locations match "`)
				w.Text(query)
				w.Raw(`"</p>`)
			}
			return
		}
		w.Raw(`<ul class="search-results">`)
		for _, loc := range locations {
			w.Rawf(`<li><a href="%s">`, markup.URL(nav.LocationHref(loc.ID)))
			w.Text(loc.Name)
			w.Raw(` <span class="muted">`)
			w.Text(loc.City)
			w.Raw(`</span></a></li>`)
		}
		w.Raw(`</ul>`)
	})
}
