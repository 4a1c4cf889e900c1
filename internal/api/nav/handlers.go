// internal/api/nav/handlers.go
package nav

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/api/apiutil"
	"github.com/codr1/bizpulse/internal/catalog"
	"github.com/codr1/bizpulse/internal/nav"
	navtempl "github.com/codr1/bizpulse/internal/templates/components/nav"
)

const searchLimit = 10

var provider catalog.Provider

func InitHandlers(p catalog.Provider) {
	provider = p
}

// HandleMenu returns the mobile menu panel with the item for the page in
// HX-Current-URL marked active.
func HandleMenu(w http.ResponseWriter, r *http.Request) {
	active := nav.RouteNone
	if currentURL := strings.TrimSpace(r.Header.Get("HX-Current-URL")); currentURL != "" {
		if parsed, err := url.Parse(currentURL); err == nil {
			active = nav.ActiveRoute(parsed.Path)
		} else {
			log.Ctx(r.Context()).Debug().Err(err).Str("hx_current_url", currentURL).Msg("Failed to parse HX-Current-URL")
		}
	}

	apiutil.RenderHTMLComponent(r.Context(), w, navtempl.MobileMenu(active), nil, "Failed to render menu", "Failed to render menu")
}

func HandleMenuClose(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
}

// HandleSearch returns up to ten locations whose name or city contains q.
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	p := provider
	if p == nil {
		logger.Error().Msg("Location provider not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		HandleMenuClose(w, r)
		return
	}

	results, err := catalog.Search(r.Context(), p, q, searchLimit)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.HandlerError{
			Status:  http.StatusInternalServerError,
			Message: "Search failed",
			Err:     fmt.Errorf("search %q: %w", q, err),
		})
		return
	}

	apiutil.RenderHTMLComponent(r.Context(), w, navtempl.SearchResults(q, results), nil, "Failed to render search results", "Search failed")
}
