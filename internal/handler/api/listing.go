package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// serveListing renders the listing under key and writes it with its cache
// headers. A fetch failure is a 500 and is never cached by clients.
func serveListing(w http.ResponseWriter, r *http.Request, renderer port.ListingRenderer, key string, fetch port.ListingFetcher) {
	out, err := renderer.RenderListing(r.Context(), key, fetch)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not load %s", key), err)
		return
	}

	maxAge := int(out.TTL.Seconds())
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, s-maxage=%d", maxAge, maxAge))
	w.Header().Set("ETag", out.ETag)
	if out.Hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}

	if etagMatches(r.Header.Get("If-None-Match"), out.ETag) {
		w.WriteHeader(http.StatusNotModified)
		logger.Debugf(r.Context(), "✅  %s not modified", key)
		return
	}

	RespondRawJSON(w, http.StatusOK, out.Raw)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
