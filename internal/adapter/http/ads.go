package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"mesa-promote/internal/core/domain"
)

type adsResponse struct {
	Ads []domain.AdWeight `json:"ads"`
}

// handleSelectAds returns up to n live ads for the requested audiences in
// lottery order. Repeat the audience parameter for several audiences; an
// empty or missing one selects the global set. An invalid n is a 400.
func (h *Handler) handleSelectAds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	n := 0
	if raw := q.Get("n"); raw != "" {
		var err error
		if n, err = strconv.Atoi(raw); err != nil || n < 0 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}
	}

	audiences, ok := q["audience"]
	if !ok {
		audiences = []string{""}
	}

	ads, err := h.selection.Select(r.Context(), audiences, n)
	if err != nil {
		h.writeError(w, "select ads", err)
		return
	}
	if ads == nil {
		ads = []domain.AdWeight{}
	}
	h.writeJSON(w, http.StatusOK, adsResponse{Ads: ads})
}

type healthResponse struct {
	SecondsSinceUpdate int64 `json:"seconds_since_update"`
}

// handlePromotionsHealth reports how long ago the live sets were last
// published by a clean pass. Monitoring alerts when the value grows past
// the run interval.
func (h *Handler) handlePromotionsHealth(w http.ResponseWriter, r *http.Request) {
	since, err := h.selection.SinceLastUpdate(r.Context())
	if err != nil {
		h.writeError(w, "promotions health", err)
		return
	}
	h.writeJSON(w, http.StatusOK, healthResponse{SecondsSinceUpdate: int64(since / time.Second)})
}

// handleRequestRun queues a full daily pass and answers 202.
func (h *Handler) handleRequestRun(w http.ResponseWriter, r *http.Request) {
	if err := h.selection.RequestRun(r.Context()); err != nil {
		h.writeError(w, "request run", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
