package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"marineval/internal/validation"
	"marineval/pkg/platform/httputil"
	"marineval/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks Service

// Service defines the validation operations the handler exposes.
type Service interface {
	ValidateDocument(ctx context.Context, text string) validation.Report
}

// Handler handles the document validation endpoint.
type Handler struct {
	logger       *slog.Logger
	service      Service
	maxBodyBytes int64
}

// New creates a new validation Handler. maxBodyBytes caps request bodies so
// the size-agnostic extractor is never fed unbounded input.
func New(service Service, logger *slog.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		maxBodyBytes: maxBodyBytes,
	}
}

// Register registers the validation routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.handleValidate)
}

type validateRequest struct {
	Text string `json:"text"`
}

// handleValidate extracts fields from the document text and validates them.
// Rule violations are expected, user-facing output and still return 200; only
// transport-level problems (bad JSON, oversized body) are HTTP errors.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.WarnContext(ctx, "request body over size limit",
				"request_id", requestID,
				"limit_bytes", h.maxBodyBytes,
			)
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, "document text exceeds the size limit")
			return
		}
		h.logger.WarnContext(ctx, "invalid validate request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		httputil.WriteError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	report := h.service.ValidateDocument(ctx, req.Text)
	httputil.WriteJSON(w, http.StatusOK, report)
}
