package dashboard

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/testutil"
)

func serve(t *testing.T, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func cardOrder(t *testing.T, body string, ids ...string) []int {
	t.Helper()
	positions := make([]int, 0, len(ids))
	for _, id := range ids {
		idx := strings.Index(body, `<a class="location-card" href="/location/`+id+`">`)
		if idx < 0 {
			t.Fatalf("expected card for location %s", id)
		}
		positions = append(positions, idx)
	}
	return positions
}

func TestHandleDashboardPageDefaultsToDescending(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t), models.DefaultPalette())

	rec := serve(t, HandleDashboardPage, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{"Dashboard", "Last updated: Today, 9:00 AM", "$458,500", "4,900", "Across 4 states", "78%"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q on dashboard", want)
		}
	}

	// 1: 1250, 4: 1100, 2: 980, 3: 850, 5: 720
	pos := cardOrder(t, body, "1", "4", "2", "3", "5")
	for i := 1; i < len(pos); i++ {
		if pos[i-1] > pos[i] {
			t.Fatalf("expected descending card order, got positions %v", pos)
		}
	}
	if !strings.Contains(body, `aria-current="page"`) {
		t.Fatalf("expected overview nav item active")
	}
}

func TestHandleDashboardPageAscendingIsReverse(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t), models.DefaultPalette())

	rec := serve(t, HandleDashboardPage, httptest.NewRequest(http.MethodGet, "/?sort=asc", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	pos := cardOrder(t, rec.Body.String(), "5", "3", "2", "4", "1")
	for i := 1; i < len(pos); i++ {
		if pos[i-1] > pos[i] {
			t.Fatalf("expected ascending card order, got positions %v", pos)
		}
	}
}

func TestHandleDashboardPageInvalidSort(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t), models.DefaultPalette())

	rec := serve(t, HandleDashboardPage, httptest.NewRequest(http.MethodGet, "/?sort=sideways", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleDashboardPageProviderFailure(t *testing.T) {
	InitHandlers(testutil.FailingProvider{Err: errors.New("disk on fire")}, models.DefaultPalette())

	rec := serve(t, HandleDashboardPage, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "disk on fire") {
		t.Fatalf("internal error leaked to client")
	}
}

func TestHandleDashboardPageEmptyCatalog(t *testing.T) {
	InitHandlers(testutil.NewCatalog(t), models.DefaultPalette())

	rec := serve(t, HandleDashboardPage, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `<a class="location-card"`) {
		t.Fatalf("expected no location cards")
	}
}

func TestHandleLocationPerformancePartial(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t), models.DefaultPalette())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/locations?sort=asc", nil)
	req.Header.Set("HX-Request", "true")
	rec := serve(t, HandleLocationPerformance, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("expected a partial, got a full page")
	}
	if !strings.Contains(body, `id="location-performance"`) {
		t.Fatalf("expected performance section")
	}
	if got := rec.Header().Get("HX-Push-Url"); got != "/?sort=asc" {
		t.Fatalf("expected push url /?sort=asc, got %q", got)
	}
}

func TestHandleLocationPerformanceReadsCurrentURL(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t), models.DefaultPalette())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/locations", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", "http://localhost:8080/?sort=asc")
	rec := serve(t, HandleLocationPerformance, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<option value="asc" selected>`) {
		t.Fatalf("expected ascending selected from HX-Current-URL")
	}
}

func TestHandleNotFound(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t), models.DefaultPalette())

	rec := serve(t, HandleNotFound, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Page not found") || !strings.Contains(body, `<a href="/">Return to Dashboard</a>`) {
		t.Fatalf("expected not found view")
	}
	if strings.Contains(body, `aria-current="page"`) {
		t.Fatalf("expected no active nav item for unknown path")
	}
}

func TestOverviewURL(t *testing.T) {
	if got := overviewURL(models.SortDescending); got != "/" {
		t.Fatalf("expected /, got %s", got)
	}
	if got := overviewURL(models.SortAscending); got != "/?sort=asc" {
		t.Fatalf("expected /?sort=asc, got %s", got)
	}
}
