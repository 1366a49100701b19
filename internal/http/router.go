package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marineval/internal/meta"
	"marineval/internal/platform/metrics"
	"marineval/internal/platform/middleware"
	validationhandler "marineval/internal/validation/handler"
)

// NewRouter wires the shared middleware stack and mounts all public
// endpoints. Transport concerns stay here; handlers delegate to domain
// services without embedding business logic.
func NewRouter(
	logger *slog.Logger,
	m *metrics.Metrics,
	validate *validationhandler.Handler,
	metaHandler *meta.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.LatencyMiddleware(m))

	validate.Register(r)
	metaHandler.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
