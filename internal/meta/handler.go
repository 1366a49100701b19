package meta

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marineval/internal/vessels"
	"marineval/pkg/platform/httputil"
)

// Handler serves health and version endpoints.
type Handler struct {
	logger   *slog.Logger
	registry *vessels.Registry
	version  string
}

// New creates a new meta Handler.
func New(registry *vessels.Registry, version string, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		registry: registry,
		version:  version,
	}
}

// Register registers the meta routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Get("/version", h.handleVersion)
}

// handleHealth reports liveness. An empty vessel registry means the service
// is running in degraded mode with vessel checks failing closed, and the
// status surfaces that.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if h.registry.IsEmpty() {
		status = "degraded"
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  status,
		"vessels": h.registry.Size(),
	})
}

func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}
