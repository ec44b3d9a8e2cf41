package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// Client talks to the payment gateway's JSON API. Transport errors and
// unexpected responses come back as *domain.GatewayError; a decline is a
// normal response with ok=false.
type Client struct {
	baseURL    string
	testMode   bool
	httpClient *http.Client
}

// NewClient returns a client for the gateway at baseURL.
func NewClient(baseURL string, timeout time.Duration, testMode bool) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		testMode: testMode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type txRequest struct {
	TestMode      bool             `json:"test_mode,omitempty"`
	PayerID       int64            `json:"payer_id"`
	ProfileID     int64            `json:"profile_id,omitempty"`
	LinkID        int64            `json:"link_id,omitempty"`
	CampaignID    int64            `json:"campaign_id"`
	TransactionID int64            `json:"transaction_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

type txResponse struct {
	OK            bool   `json:"ok"`
	TransactionID int64  `json:"transaction_id"`
	Reason        string `json:"reason"`
	Charged       bool   `json:"charged"`
}

func (c *Client) Authorize(ctx context.Context, req port.AuthRequest) (int64, string, error) {
	amount := req.Amount
	resp, err := c.do(ctx, "authorize", http.MethodPost, "/transactions/authorize", txRequest{
		TestMode:   c.testMode,
		PayerID:    req.Payer.ID,
		ProfileID:  req.ProfileID,
		LinkID:     req.LinkID,
		CampaignID: req.CampaignID,
		Amount:     &amount,
	})
	if err != nil {
		return 0, "", err
	}
	if !resp.OK {
		reason := resp.Reason
		if reason == "" {
			reason = "declined"
		}
		return domain.NoTransaction, reason, nil
	}
	if resp.TransactionID == domain.NoTransaction {
		return 0, "", &domain.GatewayError{Op: "authorize", Err: fmt.Errorf("approved without a transaction id")}
	}
	return resp.TransactionID, "", nil
}

func (c *Client) Void(ctx context.Context, payer domain.Account, transactionID, campaignID int64) error {
	resp, err := c.do(ctx, "void", http.MethodPost, "/transactions/void", txRequest{
		TestMode:      c.testMode,
		PayerID:       payer.ID,
		CampaignID:    campaignID,
		TransactionID: transactionID,
	})
	if err != nil {
		return err
	}
	if !resp.OK {
		return &domain.GatewayError{Op: "void", Err: fmt.Errorf("transaction %d: %s", transactionID, resp.Reason)}
	}
	return nil
}

func (c *Client) Charge(ctx context.Context, payer domain.Account, transactionID, campaignID int64) (bool, error) {
	resp, err := c.do(ctx, "charge", http.MethodPost, "/transactions/charge", txRequest{
		TestMode:      c.testMode,
		PayerID:       payer.ID,
		CampaignID:    campaignID,
		TransactionID: transactionID,
	})
	if err != nil {
		return false, err
	}
	return resp.OK, nil
}

func (c *Client) Refund(ctx context.Context, payer domain.Account, transactionID, campaignID int64, amount decimal.Decimal) (bool, error) {
	resp, err := c.do(ctx, "refund", http.MethodPost, "/transactions/refund", txRequest{
		TestMode:      c.testMode,
		PayerID:       payer.ID,
		CampaignID:    campaignID,
		TransactionID: transactionID,
		Amount:        &amount,
	})
	if err != nil {
		return false, err
	}
	return resp.OK, nil
}

func (c *Client) IsCharged(ctx context.Context, transactionID, campaignID int64) (bool, error) {
	path := fmt.Sprintf("/transactions/%d/status?campaign_id=%d", transactionID, campaignID)
	resp, err := c.do(ctx, "status", http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	return resp.Charged, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body any) (*txResponse, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.GatewayError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Err: fmt.Errorf("gateway unavailable: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &domain.GatewayError{Op: op, Err: fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))}
	}

	var out txResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.GatewayError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &out, nil
}
