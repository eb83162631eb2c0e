package shell

import "net/http"

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, h.store.All())
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entry, ok := h.store.Latest()
	if !ok {
		h.writeError(w, "No identifications yet", http.StatusNotFound)
		return
	}
	h.writeJSON(w, entry)
}
