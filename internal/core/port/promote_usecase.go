package port

import (
	"context"
	"time"

	"mesa-promote/internal/core/domain"
)

// AdSelection defines the request-path operations exposed by the promotion
// engine. This interface is the primary port the HTTP adapter depends on.
type AdSelection interface {
	// Select returns up to n live ads for the audiences in weighted lottery
	// order. The empty audience name selects the global set. n <= 0 uses the
	// configured default.
	Select(ctx context.Context, audiences []string, n int) ([]domain.AdWeight, error)

	// SinceLastUpdate returns the time elapsed since the live sets were last
	// published by a clean daily pass.
	SinceLastUpdate(ctx context.Context) (time.Duration, error)

	// RequestRun queues a full daily pass.
	RequestRun(ctx context.Context) error
}

// Review defines the reviewer operations on promoted links.
type Review interface {
	AcceptPromotion(ctx context.Context, linkID int64) error
	RejectPromotion(ctx context.Context, linkID int64, reason string) error
	UnapprovePromotion(ctx context.Context, linkID int64) error
	IsLiveOn(ctx context.Context, linkID int64, audience string) (bool, error)
}

// CampaignAdmin defines the advertiser and support operations on campaigns.
type CampaignAdmin interface {
	NewCampaign(ctx context.Context, linkID int64, params domain.CampaignParams) (*domain.Campaign, error)
	EditCampaign(ctx context.Context, campaignID int64, params domain.CampaignParams) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID int64) error
	AuthorizeCampaign(ctx context.Context, campaignID, payerID, profileID int64) (domain.AuthResult, error)
	FreeCampaign(ctx context.Context, campaignID int64) (domain.AuthResult, error)
	RefundCampaign(ctx context.Context, campaignID int64) (bool, error)
	CampaignBilling(ctx context.Context, campaignID int64) (domain.BillingReport, error)
}
