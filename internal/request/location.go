package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/models"
)

// LocationID returns the {id} path value as given. Ids match exactly.
func LocationID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		return "", false
	}
	return id, true
}

// SortOrderFromRequest parses sort from the query or, when the query has no
// sort key, from the HX-Current-URL header.
func SortOrderFromRequest(r *http.Request) (models.SortOrder, error) {
	return models.ParseSortOrder(queryOrCurrentURL(r, "sort"))
}

// TimeRangeFromRequest parses range from the query.
func TimeRangeFromRequest(r *http.Request) (models.TimeRange, error) {
	return models.ParseTimeRange(r.URL.Query().Get("range"))
}

func queryOrCurrentURL(r *http.Request, key string) string {
	query := r.URL.Query()
	if query.Has(key) {
		return query.Get(key)
	}

	currentURL := strings.TrimSpace(r.Header.Get("HX-Current-URL"))
	if currentURL == "" {
		return ""
	}

	parsed, err := url.Parse(currentURL)
	if err != nil {
		log.Ctx(r.Context()).
			Debug().
			Err(err).
			Str("hx_current_url", currentURL).
			Msg("Failed to parse HX-Current-URL")
		return ""
	}

	return parsed.Query().Get(key)
}
