package htmx

import (
	"net/http"
	"strings"
)

// IsRequest reports whether r was issued by htmx.
func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}
