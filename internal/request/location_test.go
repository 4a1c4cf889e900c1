package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codr1/bizpulse/internal/models"
)

func TestSortOrderFromRequest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		currentURL string
		want       models.SortOrder
		wantErr    bool
	}{
		{name: "default", target: "/", want: models.SortDescending},
		{name: "query asc", target: "/?sort=asc", want: models.SortAscending},
		{name: "query wins over header", target: "/?sort=desc", currentURL: "http://localhost/?sort=asc", want: models.SortDescending},
		{name: "header fallback", target: "/api/v1/dashboard/locations", currentURL: "http://localhost/?sort=asc", want: models.SortAscending},
		{name: "unparseable header", target: "/", currentURL: "http://[::1", want: models.SortDescending},
		{name: "invalid", target: "/?sort=sideways", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, test.target, nil)
			if test.currentURL != "" {
				req.Header.Set("HX-Current-URL", test.currentURL)
			}

			got, err := SortOrderFromRequest(req)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Fatalf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestLocationID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/location/1", nil)
	req.SetPathValue("id", "1")
	if id, ok := LocationID(req); !ok || id != "1" {
		t.Fatalf("expected id 1, got %q (%v)", id, ok)
	}

	req.SetPathValue("id", " 1")
	if id, ok := LocationID(req); !ok || id != " 1" {
		t.Fatalf("expected id kept as given, got %q (%v)", id, ok)
	}

	req.SetPathValue("id", "")
	if _, ok := LocationID(req); ok {
		t.Fatalf("expected missing id")
	}
}

func TestTimeRangeFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/location/1?range=quarter", nil)
	got, err := TimeRangeFromRequest(req)
	if err != nil || got != models.RangeQuarter {
		t.Fatalf("expected quarter, got %q (%v)", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/location/1?range=decade", nil)
	if _, err := TimeRangeFromRequest(req); err == nil {
		t.Fatalf("expected error for invalid range")
	}
}
