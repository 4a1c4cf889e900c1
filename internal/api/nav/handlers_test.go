package nav

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codr1/bizpulse/internal/models"
	"github.com/codr1/bizpulse/internal/testutil"
)

func TestHandleSearch(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t))

	tests := []struct {
		name      string
		query     string
		want      []string
		notWanted []string
	}{
		{name: "by name", query: "downtown", want: []string{`href="/location/1"`, "Downtown Hub"}, notWanted: []string{"Tech Park"}},
		{name: "by city", query: "SEATTLE", want: []string{`href="/location/5"`}},
		{name: "no match", query: "zzz", want: []string{"No locations match"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nav/search?q="+test.query, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			body := rec.Body.String()
			for _, want := range test.want {
				if !strings.Contains(body, want) {
					t.Fatalf("expected %q in %s", want, body)
				}
			}
			for _, unwanted := range test.notWanted {
				if strings.Contains(body, unwanted) {
					t.Fatalf("did not expect %q in %s", unwanted, body)
				}
			}
		})
	}
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	InitHandlers(testutil.NewTestCatalog(t))

	rec := httptest.NewRecorder()
	HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nav/search?q=", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleSearchLimit(t *testing.T) {
	locs := make([]models.Location, 0, 15)
	for i := 0; i < 15; i++ {
		locs = append(locs, testutil.Location(fmt.Sprint(i), fmt.Sprintf("Site %d", i), "Springfield", 100))
	}
	InitHandlers(testutil.NewCatalog(t, locs...))

	rec := httptest.NewRecorder()
	HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nav/search?q=springfield", nil))
	if got := strings.Count(rec.Body.String(), "<li>"); got != searchLimit {
		t.Fatalf("expected %d results, got %d", searchLimit, got)
	}
}

func TestHandleSearchProviderFailure(t *testing.T) {
	InitHandlers(testutil.FailingProvider{Err: errors.New("gone")})

	rec := httptest.NewRecorder()
	HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nav/search?q=x", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestHandleMenuUsesCurrentURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nav/menu", nil)
	req.Header.Set("HX-Current-URL", "http://localhost:8080/locations?page=2")

	rec := httptest.NewRecorder()
	HandleMenu(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<a href="/locations" class="nav-item nav-item--active" aria-current="page">`) {
		t.Fatalf("expected locations active, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `hx-get="/api/v1/nav/menu/close" hx-target="#mobile-menu"`) {
		t.Fatalf("expected close button wired to the close endpoint")
	}
}

func TestHandleMenuDetailPageHasNoActiveItem(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nav/menu", nil)
	req.Header.Set("HX-Current-URL", "http://localhost:8080/location/3")

	rec := httptest.NewRecorder()
	HandleMenu(rec, req)

	if strings.Contains(rec.Body.String(), `aria-current="page"`) {
		t.Fatalf("expected no active item on a detail page, got %s", rec.Body.String())
	}
}

func TestHandleMenuClose(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleMenuClose(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nav/menu/close", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d %q", rec.Code, rec.Body.String())
	}
}
