package layouts

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/nav"
	"github.com/codr1/bizpulse/internal/templates/markup"
)

func renderPage(t *testing.T, page Page) string {
	t.Helper()

	content := markup.Component(func(w *markup.Writer) {
		w.Raw(`<p id="marker">content</p>`)
	})
	var buf bytes.Buffer
	if err := Base(page, content).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render base: %v", err)
	}
	return buf.String()
}

func TestBaseWrapsContentInShell(t *testing.T) {
	html := renderPage(t, Page{Title: "Dashboard", Active: nav.RouteOverview, Palette: models.DefaultPalette()})

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Fatalf("expected doctype, got: %.80s", html)
	}
	if !strings.Contains(html, "<title>Dashboard · BizPulse</title>") {
		t.Fatalf("expected page title, got: %s", html)
	}
	main := strings.Index(html, `<main class="content" id="content">`)
	marker := strings.Index(html, `<p id="marker">content</p>`)
	if main < 0 || marker < main {
		t.Fatalf("expected content inside main region, got: %s", html)
	}
	if !strings.Contains(html, `class="sidebar"`) {
		t.Fatalf("expected sidebar, got: %s", html)
	}
}

func TestBaseMarksExactlyOneActiveItem(t *testing.T) {
	html := renderPage(t, Page{Active: nav.RouteLocations, Palette: models.DefaultPalette()})

	if got := strings.Count(html, `aria-current="page"`); got != 1 {
		t.Fatalf("expected one active item, got %d", got)
	}
	if !strings.Contains(html, `<a href="/locations" class="nav-item nav-item--active" aria-current="page">`) {
		t.Fatalf("expected locations item active, got: %s", html)
	}
}

func TestBaseWithoutActiveRoute(t *testing.T) {
	html := renderPage(t, Page{Active: nav.RouteNone, Palette: models.DefaultPalette()})

	if strings.Contains(html, `class="nav-item nav-item--active"`) || strings.Contains(html, `aria-current="page"`) {
		t.Fatalf("expected no active item, got: %s", html)
	}
	if !strings.Contains(html, "<title>BizPulse</title>") {
		t.Fatalf("expected default title, got: %s", html)
	}
}

func TestThemeVarsFollowPalette(t *testing.T) {
	palette := models.DefaultPalette()
	palette.Primary = "#112233"

	css := getThemeCssVars(palette)
	if !strings.Contains(css, "--color-primary:#112233;") {
		t.Fatalf("expected primary var, got: %s", css)
	}
	if !strings.Contains(css, "--color-primary-soft:"+palette.Shade(0.85)+";") {
		t.Fatalf("expected soft primary var, got: %s", css)
	}
}

func TestNotFoundLinksHome(t *testing.T) {
	var buf bytes.Buffer
	if err := NotFound().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render not found: %v", err)
	}
	if !strings.Contains(buf.String(), `<a href="/">Return to Dashboard</a>`) {
		t.Fatalf("expected home link, got: %s", buf.String())
	}
}
