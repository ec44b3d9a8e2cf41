package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidData marks records whose stored values break an invariant.
	ErrInvalidData = errors.New("invalid data")
	// ErrCoverageGap marks missing delivery-tracking data.
	ErrCoverageGap = errors.New("traffic coverage gap")
	// ErrAlreadyFinalized is returned when a refund is requested twice.
	ErrAlreadyFinalized = errors.New("campaign already finalized")
	// ErrLockTimeout is returned when a per-link lock cannot be acquired.
	ErrLockTimeout = errors.New("link lock timeout")
)

// GatewayError is a payment gateway fault (network, protocol, unexpected
// response). A decline is not a GatewayError.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Gap is a window without delivery-tracking data.
type Gap struct {
	From time.Time
	To   time.Time
}

// CoverageError aborts a finalize batch because billable amounts cannot be
// computed yet.
type CoverageError struct {
	Day  time.Time
	Gaps []Gap
}

func (e *CoverageError) Error() string {
	parts := make([]string, 0, len(e.Gaps))
	for _, g := range e.Gaps {
		parts = append(parts, g.From.Format(time.RFC3339)+".."+g.To.Format(time.RFC3339))
	}
	return fmt.Sprintf("can't finalize campaigns finished on %s: missing traffic %s",
		e.Day.Format(DateLayout), strings.Join(parts, ", "))
}

func (e *CoverageError) Unwrap() error { return ErrCoverageGap }

// CampaignError pairs a campaign with the fault raised while processing it.
type CampaignError struct {
	CampaignID int64
	Err        error
}

func (e CampaignError) Error() string {
	return fmt.Sprintf("campaign %d: %v", e.CampaignID, e.Err)
}

// BatchError reports a batch pass that completed but hit per-campaign
// errors. It is meant for operator alerting.
type BatchError struct {
	Campaigns []CampaignError
	Cause     error
}

func (e *BatchError) Error() string {
	var b strings.Builder
	b.WriteString("some scheduled campaigns could not be added to daily promotions")
	if len(e.Campaigns) > 0 {
		b.WriteString(": ")
		for i, ce := range e.Campaigns {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(ce.Error())
		}
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *BatchError) Unwrap() error { return e.Cause }
