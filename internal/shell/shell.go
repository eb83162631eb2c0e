// Package shell is the local companion interface: it accepts photo uploads,
// forwards them to the identification service, and keeps the results in an
// in-memory session history.
package shell

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/tidewater-app/boatid/internal/api"
	"github.com/tidewater-app/boatid/internal/history"
	"github.com/tidewater-app/boatid/internal/models"
)

// IdentificationService is the slice of the API client the shell depends on.
type IdentificationService interface {
	Identify(ctx context.Context, req api.IdentifyRequest) (*models.IdentificationResult, error)
	IdentificationFields(ctx context.Context) (*models.FieldCatalog, error)
}

type Handler struct {
	service       IdentificationService
	store         *history.Store
	fieldsCache   *cache.Cache
	defaultFields []string
	busy          atomic.Bool
}

// Field catalog cache; the catalog is static server side, so a generous TTL
// is fine.
const (
	fieldsCacheKey = "identification-fields"
	fieldsCacheTTL = 10 * time.Minute
)

func New(service IdentificationService, defaultFields []string) *Handler {
	return &Handler{
		service:       service,
		store:         history.New(history.DefaultLimit),
		fieldsCache:   cache.New(fieldsCacheTTL, 30*time.Minute),
		defaultFields: defaultFields,
	}
}

// Routes wires the shell endpoints onto a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/identify", h.HandleIdentify)
	mux.HandleFunc("/api/history", h.HandleHistory)
	mux.HandleFunc("/api/history/latest", h.HandleLatest)
	mux.HandleFunc("/api/fields", h.HandleFields)
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	return mux
}

func (h *Handler) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		slog.Error("Unable to encode error response", "err", err)
	}
}
