package nav

import "testing"

func TestActiveRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{path: "/", want: RouteOverview},
		{path: "", want: RouteOverview},
		{path: "/locations", want: RouteLocations},
		{path: "/locations/", want: RouteLocations},
		{path: "/locations-archive", want: RouteLocations},
		{path: "/location/1", want: RouteNone},
		{path: "/location/1/export.xlsx", want: RouteNone},
		{path: "/analytics", want: RouteAnalytics},
		{path: "/reports/weekly", want: RouteReports},
		{path: "/settings", want: RouteSettings},
		{path: "/settingsfoo/bar", want: RouteSettings},
		{path: "/overview", want: RouteNone},
		{path: "/unknown", want: RouteNone},
		{path: "/api/v1/nav/menu", want: RouteNone},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			if got := ActiveRoute(test.path); got != test.want {
				t.Fatalf("ActiveRoute(%q) = %s, want %s", test.path, got, test.want)
			}
		})
	}
}

func TestAtMostOneItemActive(t *testing.T) {
	paths := []string{"/", "/locations", "/location/3", "/analytics", "/reports", "/settings", "/nope"}
	for _, path := range paths {
		active := ActiveRoute(path)
		count := 0
		for _, item := range Items() {
			if item.Route == active {
				count++
			}
		}
		if active == RouteNone && count != 0 {
			t.Fatalf("%s: RouteNone matched %d items", path, count)
		}
		if active != RouteNone && count != 1 {
			t.Fatalf("%s: %d items active, want 1", path, count)
		}
	}
}

func TestItemsOrderAndHref(t *testing.T) {
	got := Items()
	want := []string{"/", "/locations", "/analytics", "/reports", "/settings"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, item := range got {
		if item.Href != want[i] {
			t.Fatalf("item %d href = %s, want %s", i, item.Href, want[i])
		}
		if item.Route.Href() != item.Href {
			t.Fatalf("route %s Href() = %s, want %s", item.Route, item.Route.Href(), item.Href)
		}
	}
	if RouteNone.Href() != "" {
		t.Fatalf("RouteNone.Href() = %q", RouteNone.Href())
	}
}

func TestLocationHrefEscapesID(t *testing.T) {
	if got := LocationHref("1"); got != "/location/1" {
		t.Fatalf("LocationHref(1) = %s", got)
	}
	if got := LocationHref("a b/c"); got != "/location/a%20b%2Fc" {
		t.Fatalf("LocationHref escaped = %s", got)
	}
	if got := LocationExportHref("1"); got != "/location/1/export.xlsx" {
		t.Fatalf("LocationExportHref(1) = %s", got)
	}
}
