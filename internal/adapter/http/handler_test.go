package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockAdSelection, *mocks.MockReview) {
	t.Helper()
	sel := mocks.NewMockAdSelection(t)
	rev := mocks.NewMockReview(t)
	admin := mocks.NewMockCampaignAdmin(t)
	return NewHandler(sel, rev, admin, slog.New(slog.NewTextHandler(io.Discard, nil))), sel, rev
}

func newAdminTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignAdmin) {
	t.Helper()
	admin := mocks.NewMockCampaignAdmin(t)
	h := NewHandler(mocks.NewMockAdSelection(t), mocks.NewMockReview(t), admin,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return h, admin
}

func serve(h *Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestSelectAds(t *testing.T) {
	h, sel, _ := newTestHandler(t)
	ads := []domain.AdWeight{{LinkID: 1, CampaignID: 10, Audience: "cats", Weight: 1}}
	sel.EXPECT().Select(mock.Anything, []string{"cats", ""}, 3).Return(ads, nil)

	rec := serve(h, http.MethodGet, "/api/v1/ads?audience=cats&audience=&n=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp adsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ads, resp.Ads)
}

func TestSelectAdsDefaultsToGlobal(t *testing.T) {
	h, sel, _ := newTestHandler(t)
	sel.EXPECT().Select(mock.Anything, []string{""}, 0).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/v1/ads", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ads":[]}`, rec.Body.String())
}

func TestSelectAdsRejectsBadN(t *testing.T) {
	h, _, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/api/v1/ads?n=lots", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromotionsHealth(t *testing.T) {
	h, sel, _ := newTestHandler(t)
	sel.EXPECT().SinceLastUpdate(mock.Anything).Return(90*time.Second, nil)

	rec := serve(h, http.MethodGet, "/api/v1/health/promotions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"seconds_since_update":90}`, rec.Body.String())
}

func TestRequestRun(t *testing.T) {
	h, sel, _ := newTestHandler(t)
	sel.EXPECT().RequestRun(mock.Anything).Return(nil)

	rec := serve(h, http.MethodPost, "/api/v1/promotions/run", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestReviewRoutes(t *testing.T) {
	h, _, rev := newTestHandler(t)
	rev.EXPECT().AcceptPromotion(mock.Anything, int64(7)).Return(nil)
	rev.EXPECT().RejectPromotion(mock.Anything, int64(7), "spam").Return(nil)
	rev.EXPECT().UnapprovePromotion(mock.Anything, int64(7)).Return(nil)
	rev.EXPECT().IsLiveOn(mock.Anything, int64(7), "cats").Return(true, nil)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodPost, "/api/v1/links/7/accept", nil).Code)
	assert.Equal(t, http.StatusNoContent,
		serve(h, http.MethodPost, "/api/v1/links/7/reject", strings.NewReader(`{"reason":"spam"}`)).Code)
	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodPost, "/api/v1/links/7/unapprove", nil).Code)

	rec := serve(h, http.MethodGet, "/api/v1/links/7/live?audience=cats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"live":true}`, rec.Body.String())
}

func TestReviewErrors(t *testing.T) {
	h, _, rev := newTestHandler(t)
	rev.EXPECT().AcceptPromotion(mock.Anything, int64(404)).Return(domain.ErrNotFound)
	rev.EXPECT().AcceptPromotion(mock.Anything, int64(9)).Return(domain.ErrLockTimeout)
	rev.EXPECT().AcceptPromotion(mock.Anything, int64(5)).Return(errors.New("db down"))

	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodPost, "/api/v1/links/abc/accept", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodPost, "/api/v1/links/404/accept", nil).Code)
	assert.Equal(t, http.StatusConflict, serve(h, http.MethodPost, "/api/v1/links/9/accept", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(h, http.MethodPost, "/api/v1/links/5/accept", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _, _ := newTestHandler(t)
	rec := serve(h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewCampaignRoute(t *testing.T) {
	h, admin := newAdminTestHandler(t)
	start := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	admin.EXPECT().NewCampaign(mock.Anything, int64(7), mock.MatchedBy(func(p domain.CampaignParams) bool {
		return p.Audience == "cats" && p.StartDate.Equal(start) && p.EndDate.Equal(end) &&
			p.Bid.String() == "30" && p.Pricing == domain.PricingCPM && p.CPMRate == 250
	})).Return(&domain.Campaign{
		ID: 11, LinkID: 7, Audience: "cats", StartDate: start, EndDate: end,
		Bid: decimal.RequireFromString("30"), Pricing: domain.PricingCPM, CPMRate: 250,
	}, nil)

	body := `{"audience":"cats","start_date":"2026-10-17","end_date":"2026-10-19","bid":"30","pricing":"cpm","cpm_rate":250}`
	rec := serve(h, http.MethodPost, "/api/v1/links/7/campaigns", strings.NewReader(body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "2026-10-17", resp.StartDate)
	assert.Equal(t, "cpm", resp.Pricing)
}

func TestNewCampaignRouteRejectsBadDates(t *testing.T) {
	h, _ := newAdminTestHandler(t)
	body := `{"start_date":"tomorrow","end_date":"2026-10-19","bid":"30"}`
	rec := serve(h, http.MethodPost, "/api/v1/links/7/campaigns", strings.NewReader(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewCampaignRouteKeepsMissingPricing(t *testing.T) {
	h, admin := newAdminTestHandler(t)
	admin.EXPECT().NewCampaign(mock.Anything, int64(7), mock.MatchedBy(func(p domain.CampaignParams) bool {
		return p.Pricing == ""
	})).Return(nil, fmt.Errorf("%w: campaign 0 has pricing mode \"\"", domain.ErrInvalidData))

	body := `{"start_date":"2026-10-17","end_date":"2026-10-19","bid":"30","cpm_rate":250}`
	rec := serve(h, http.MethodPost, "/api/v1/links/7/campaigns", strings.NewReader(body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCampaignBillingRoute(t *testing.T) {
	h, admin := newAdminTestHandler(t)
	admin.EXPECT().CampaignBilling(mock.Anything, int64(11)).Return(domain.BillingReport{
		CampaignID:  11,
		Bid:         decimal.RequireFromString("100"),
		Spent:       decimal.RequireFromString("75"),
		Impressions: 15000,
		CPM:         decimal.RequireFromString("5"),
	}, nil)
	admin.EXPECT().CampaignBilling(mock.Anything, int64(12)).Return(domain.BillingReport{}, domain.ErrNotFound)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/11/billing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaign_id":11,"bid":"100","spent":"75","impressions":15000,"cpm":"5"}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/12/billing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditAndDeleteCampaignRoutes(t *testing.T) {
	h, admin := newAdminTestHandler(t)
	admin.EXPECT().EditCampaign(mock.Anything, int64(11), mock.Anything).Return(nil, domain.ErrInvalidData)
	admin.EXPECT().DeleteCampaign(mock.Anything, int64(11)).Return(nil)

	body := `{"start_date":"2026-10-19","end_date":"2026-10-17","bid":"30","pricing":"flat"}`
	rec := serve(h, http.MethodPut, "/api/v1/campaigns/11", strings.NewReader(body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(h, http.MethodDelete, "/api/v1/campaigns/11", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthorizeCampaignRoute(t *testing.T) {
	h, admin := newAdminTestHandler(t)
	admin.EXPECT().AuthorizeCampaign(mock.Anything, int64(11), int64(3), int64(4)).
		Return(domain.AuthResult{OK: false, Reason: "card declined"}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/11/authorize", strings.NewReader(`{"payer_id":3,"profile_id":4}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var res domain.AuthResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.False(t, res.OK)
	assert.Equal(t, "card declined", res.Reason)

	rec = serve(h, http.MethodPost, "/api/v1/campaigns/11/authorize", strings.NewReader(`{"payer_id":3}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFreeAndRefundCampaignRoutes(t *testing.T) {
	h, admin := newAdminTestHandler(t)
	admin.EXPECT().FreeCampaign(mock.Anything, int64(11)).
		Return(domain.AuthResult{OK: true, TransactionID: domain.FreebieTransaction}, nil)
	admin.EXPECT().RefundCampaign(mock.Anything, int64(11)).Return(true, nil).Once()
	admin.EXPECT().RefundCampaign(mock.Anything, int64(12)).Return(false, domain.ErrAlreadyFinalized).Once()

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/11/free", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/campaigns/11/refund", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refunded":true}`, rec.Body.String())

	rec = serve(h, http.MethodPost, "/api/v1/campaigns/12/refund", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
