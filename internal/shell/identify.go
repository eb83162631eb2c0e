package shell

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidewater-app/boatid/internal/api"
	"github.com/tidewater-app/boatid/internal/history"
)

const maxUploadBytes = 10 * 1024 * 1024

func (h *Handler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// One upload at a time; a second trigger while a request is running is
	// rejected instead of racing.
	if !h.busy.CompareAndSwap(false, true) {
		h.writeError(w, "An identification is already in progress", http.StatusConflict)
		return
	}
	defer h.busy.Store(false)

	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, "Failed to read image: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fileData) > maxUploadBytes {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}
	if !strings.HasPrefix(http.DetectContentType(fileData), "image/") {
		h.writeError(w, "File must be an image", http.StatusBadRequest)
		return
	}

	requestedFields := h.defaultFields
	if raw := r.FormValue("requested_fields"); raw != "" {
		requestedFields = splitFields(raw)
	}
	storeResults := r.FormValue("store_results") != "false"

	result, err := h.service.Identify(r.Context(), api.IdentifyRequest{
		Filename:        header.Filename,
		Image:           bytes.NewReader(fileData),
		RequestedFields: requestedFields,
		StoreResults:    storeResults,
	})
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadGateway)
		return
	}

	entry := history.Entry{
		ID:         uuid.NewString(),
		UploadedAt: time.Now(),
		Result:     *result,
	}
	h.store.Add(entry)

	h.writeJSON(w, entry)
}

func splitFields(raw string) []string {
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
