// Package nav defines the named destinations of the sidebar and resolves
// which one a request path belongs to.
package nav

import (
	"net/url"
	"strings"
)

type Route int

const (
	RouteNone Route = iota
	RouteOverview
	RouteLocations
	RouteAnalytics
	RouteReports
	RouteSettings
)

// Item is one sidebar entry.
type Item struct {
	Route Route
	Label string
	Href  string
	Icon  string
}

var items = []Item{
	{Route: RouteOverview, Label: "Overview", Href: "/", Icon: "layout-dashboard"},
	{Route: RouteLocations, Label: "Locations", Href: "/locations", Icon: "map-pin"},
	{Route: RouteAnalytics, Label: "Analytics", Href: "/analytics", Icon: "bar-chart"},
	{Route: RouteReports, Label: "Reports", Href: "/reports", Icon: "pie-chart"},
	{Route: RouteSettings, Label: "Settings", Href: "/settings", Icon: "settings"},
}

// Items returns the sidebar entries in display order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func (r Route) String() string {
	for _, item := range items {
		if item.Route == r {
			return item.Label
		}
	}
	return "None"
}

// Href returns the sidebar link of r, or "" for RouteNone.
func (r Route) Href() string {
	for _, item := range items {
		if item.Route == r {
			return item.Href
		}
	}
	return ""
}

// ActiveRoute maps a request path to the first sidebar item it belongs to.
// The root matches only "/" exactly; every other item matches when the path
// starts with its href, so "/locations-archive" belongs to Locations while
// "/location/1" belongs to none.
func ActiveRoute(path string) Route {
	if path == "" {
		path = "/"
	}
	for _, item := range items {
		if path == item.Href || (item.Href != "/" && strings.HasPrefix(path, item.Href)) {
			return item.Route
		}
	}
	return RouteNone
}

// LocationHref is the detail page URL for a location id.
func LocationHref(id string) string {
	return "/location/" + url.PathEscape(id)
}

func LocationExportHref(id string) string {
	return LocationHref(id) + "/export.xlsx"
}
