package domain

import "fmt"

// PromoteStatus is the position of a promoted link in its review and
// delivery lifecycle. Values are ordered; use the comparison helpers rather
// than relying on the underlying integers.
type PromoteStatus int

const (
	StatusUnpaid PromoteStatus = iota + 1
	StatusUnseen
	StatusAccepted
	StatusPending // charged, waiting to go live
	StatusPromoted
	StatusFinished
)

var statusNames = map[PromoteStatus]string{
	StatusUnpaid:   "unpaid",
	StatusUnseen:   "unseen",
	StatusAccepted: "accepted",
	StatusPending:  "pending",
	StatusPromoted: "promoted",
	StatusFinished: "finished",
}

// String returns the persisted name of the status.
func (s PromoteStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Valid reports whether s is one of the defined statuses.
func (s PromoteStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// AtLeast reports whether s is at or past o in the lifecycle.
func (s PromoteStatus) AtLeast(o PromoteStatus) bool { return s >= o }

// Before reports whether s comes strictly before o.
func (s PromoteStatus) Before(o PromoteStatus) bool { return s < o }

// MaxStatus returns the later of the two statuses.
func MaxStatus(a, b PromoteStatus) PromoteStatus {
	if a >= b {
		return a
	}
	return b
}

// ParseStatus converts a persisted status name back into a PromoteStatus.
func ParseStatus(name string) (PromoteStatus, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown promote status %q", ErrInvalidData, name)
}

// Link is the item being advertised. Status moves forward through the
// ordered lifecycle; Rejected is a separate terminal flag that hides the link
// regardless of Status until the link is re-approved.
type Link struct {
	ID       int64
	AuthorID int64
	Title    string
	Status   PromoteStatus
	Rejected bool
	Adult    bool
	Deleted  bool
}

// IsPromo reports whether the link can take part in promotion at all.
func (l *Link) IsPromo() bool {
	return l != nil && !l.Deleted && l.Status.Valid()
}

// IsAccepted reports whether the link passed review and may be scheduled.
func (l *Link) IsAccepted() bool {
	return l.IsPromo() && !l.Rejected && l.Status.AtLeast(StatusAccepted)
}

// IsPromoted reports whether the link is currently live.
func (l *Link) IsPromoted() bool {
	return l.IsPromo() && !l.Rejected && l.Status == StatusPromoted
}

// Raise moves the status up to at least s and reports whether it changed.
// It never lowers the status.
func (l *Link) Raise(s PromoteStatus) bool {
	next := MaxStatus(l.Status, s)
	if next == l.Status {
		return false
	}
	l.Status = next
	return true
}

// Reject sets the terminal rejected flag.
func (l *Link) Reject() { l.Rejected = true }

// Reapprove clears a rejection and sends the link back to review.
func (l *Link) Reapprove() {
	l.Rejected = false
	l.Status = StatusUnseen
}

// Audience is a named slot group campaigns can target. Adult audiences flag
// every link that runs on them as 18+.
type Audience struct {
	Name  string
	Adult bool
}

// Account is the advertiser paying for a campaign.
type Account struct {
	ID            int64
	Name          string
	Complimentary bool
}
