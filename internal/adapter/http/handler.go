package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// Handler is the inbound HTTP adapter. It serves ad selection on the request
// path, the live-set health check, a manual trigger for the daily pass and
// the reviewer and advertiser actions on promoted links.
type Handler struct {
	selection port.AdSelection
	review    port.Review
	admin     port.CampaignAdmin
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(selection port.AdSelection, review port.Review, admin port.CampaignAdmin, logger *slog.Logger) *Handler {
	h := &Handler{selection: selection, review: review, admin: admin, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(measure)

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads", h.handleSelectAds)
		r.Get("/health/promotions", h.handlePromotionsHealth)
		r.Post("/promotions/run", h.handleRequestRun)

		r.Route("/links/{id}", func(r chi.Router) {
			r.Post("/accept", h.handleAccept)
			r.Post("/reject", h.handleReject)
			r.Post("/unapprove", h.handleUnapprove)
			r.Get("/live", h.handleIsLive)
			r.Post("/campaigns", h.handleNewCampaign)
		})

		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Put("/", h.handleEditCampaign)
			r.Delete("/", h.handleDeleteCampaign)
			r.Post("/authorize", h.handleAuthorize)
			r.Post("/free", h.handleFreeCampaign)
			r.Post("/refund", h.handleRefundCampaign)
			r.Get("/billing", h.handleCampaignBilling)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps core errors onto status codes. Unknown errors are logged
// and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrLockTimeout):
		http.Error(w, "link is busy, retry later", http.StatusConflict)
	case errors.Is(err, domain.ErrAlreadyFinalized):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidData):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
