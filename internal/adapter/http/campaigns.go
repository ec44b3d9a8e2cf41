package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/domain"
)

type campaignRequest struct {
	Audience  string          `json:"audience"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Bid       decimal.Decimal `json:"bid"`
	Pricing   string          `json:"pricing"`
	CPMRate   int64           `json:"cpm_rate"`
	Priority  string          `json:"priority"`
}

func (req campaignRequest) params() (domain.CampaignParams, error) {
	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return domain.CampaignParams{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		return domain.CampaignParams{}, fmt.Errorf("end_date: %w", err)
	}
	return domain.CampaignParams{
		Audience:  req.Audience,
		StartDate: start,
		EndDate:   end,
		Bid:       req.Bid,
		Pricing:   domain.PricingMode(req.Pricing),
		CPMRate:   req.CPMRate,
		Priority:  req.Priority,
	}, nil
}

type campaignResponse struct {
	ID            int64            `json:"id"`
	LinkID        int64            `json:"link_id"`
	Audience      string           `json:"audience"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	Bid           decimal.Decimal  `json:"bid"`
	Pricing       string           `json:"pricing"`
	CPMRate       int64            `json:"cpm_rate"`
	Priority      string           `json:"priority,omitempty"`
	TransactionID int64            `json:"transaction_id,omitempty"`
	RefundAmount  *decimal.Decimal `json:"refund_amount,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		LinkID:        c.LinkID,
		Audience:      c.Audience,
		StartDate:     c.StartDate.Format(domain.DateLayout),
		EndDate:       c.EndDate.Format(domain.DateLayout),
		Bid:           c.Bid,
		Pricing:       string(c.Pricing),
		CPMRate:       c.CPMRate,
		Priority:      c.Priority,
		TransactionID: c.TransactionID,
		RefundAmount:  c.RefundAmount,
	}
}

func decodeCampaign(w http.ResponseWriter, r *http.Request) (domain.CampaignParams, bool) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return domain.CampaignParams{}, false
	}
	params, err := req.params()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return domain.CampaignParams{}, false
	}
	return params, true
}

func (h *Handler) handleNewCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}
	params, ok := decodeCampaign(w, r)
	if !ok {
		return
	}
	c, err := h.admin.NewCampaign(r.Context(), id, params)
	if err != nil {
		h.writeError(w, "new campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleEditCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	params, ok := decodeCampaign(w, r)
	if !ok {
		return
	}
	c, err := h.admin.EditCampaign(r.Context(), id, params)
	if err != nil {
		h.writeError(w, "edit campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err := h.admin.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, "delete campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type authorizeRequest struct {
	PayerID   int64 `json:"payer_id"`
	ProfileID int64 `json:"profile_id"`
}

// handleAuthorize places a hold for the campaign budget on the payer's
// stored payment profile. A declined card is still a 200 with ok=false.
func (h *Handler) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req authorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.PayerID <= 0 || req.ProfileID <= 0 {
		http.Error(w, "payer_id and profile_id are required", http.StatusBadRequest)
		return
	}
	res, err := h.admin.AuthorizeCampaign(r.Context(), id, req.PayerID, req.ProfileID)
	if err != nil {
		h.writeError(w, "authorize campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleFreeCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	res, err := h.admin.FreeCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "free campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

type refundResponse struct {
	Refunded bool `json:"refunded"`
}

func (h *Handler) handleRefundCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	refunded, err := h.admin.RefundCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "refund campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, refundResponse{Refunded: refunded})
}

func (h *Handler) handleCampaignBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	report, err := h.admin.CampaignBilling(r.Context(), id)
	if err != nil {
		h.writeError(w, "campaign billing", err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
