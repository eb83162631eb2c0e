package shell

import (
	"net/http"

	"github.com/patrickmn/go-cache"
)

func (h *Handler) HandleFields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cached, ok := h.fieldsCache.Get(fieldsCacheKey); ok {
		h.writeJSON(w, cached)
		return
	}

	catalog, err := h.service.IdentificationFields(r.Context())
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.fieldsCache.Set(fieldsCacheKey, catalog, cache.DefaultExpiration)
	h.writeJSON(w, catalog)
}
