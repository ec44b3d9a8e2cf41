package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}
	if err := h.review.AcceptPromotion(r.Context(), id); err != nil {
		h.writeError(w, "accept promotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// handleReject takes an optional JSON body with the reason shown to the
// author.
func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.review.RejectPromotion(r.Context(), id, req.Reason); err != nil {
		h.writeError(w, "reject promotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUnapprove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}
	if err := h.review.UnapprovePromotion(r.Context(), id); err != nil {
		h.writeError(w, "unapprove promotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type liveResponse struct {
	Live bool `json:"live"`
}

func (h *Handler) handleIsLive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}
	live, err := h.review.IsLiveOn(r.Context(), id, r.URL.Query().Get("audience"))
	if err != nil {
		h.writeError(w, "is live", err)
		return
	}
	h.writeJSON(w, http.StatusOK, liveResponse{Live: live})
}
