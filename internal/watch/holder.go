package watch

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Holder publishes the current Site to concurrent readers. A Site is
// immutable, so rebuilding means building a new one and swapping the
// reference; readers never observe a partially updated value.
type Holder struct {
	current atomic.Pointer[nav.Site]
}

// NewHolder returns a Holder serving site, which may be nil.
func NewHolder(site *nav.Site) *Holder {
	h := &Holder{}
	if site != nil {
		h.current.Store(site)
	}
	return h
}

// Load returns the current site, or nil if none was ever built.
func (h *Holder) Load() *nav.Site {
	return h.current.Load()
}

// Swap installs site and returns the previous one.
func (h *Holder) Swap(site *nav.Site) *nav.Site {
	return h.current.Swap(site)
}

// ServeHTTP writes the current site as JSON, or 503 before the first
// successful build.
func (h *Holder) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	site := h.Load()
	if site == nil {
		http.Error(w, "site navigation not built yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(site.Raw())
}
