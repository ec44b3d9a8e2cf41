package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout formats promotion dates.
const DateLayout = "2006-01-02"

// Reserved live-set keys. Audience names never start with '@', so these
// cannot collide with a real audience.
const (
	// GlobalAudienceKey holds campaigns that target every audience.
	GlobalAudienceKey = "@global"
	// AllAdsKey holds the unfiltered union of every live set. It is used for
	// health and admin queries, never for serving.
	AllAdsKey = "@all"
)

// LiveSetKey maps an audience name to the key its live set is stored under.
func LiveSetKey(audience string) string {
	if audience = NormalizeAudience(audience); audience == "" {
		return GlobalAudienceKey
	}
	return audience
}

// NormalizeAudience returns the canonical form of an audience name.
func NormalizeAudience(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsReservedKey reports whether key is one of the reserved live-set keys.
func IsReservedKey(key string) bool {
	return strings.HasPrefix(key, "@")
}

// MessageKind is the type of an update-queue message.
type MessageKind string

const (
	// MessageRunAll triggers a full daily pass.
	MessageRunAll MessageKind = "run_all"
	// MessageLinkChanged triggers a pass and then records an audit entry on
	// the link.
	MessageLinkChanged MessageKind = "link_changed"
)

// Message is an update-queue message. Delivery is at least once.
type Message struct {
	ID       uuid.UUID   `json:"id"`
	Kind     MessageKind `json:"kind"`
	LinkID   int64       `json:"link,omitempty"`
	Reason   string      `json:"message,omitempty"`
	QueuedAt time.Time   `json:"queued_at"`
}

// NewRunAllMessage builds a RUN_ALL message.
func NewRunAllMessage(now time.Time) Message {
	return Message{ID: uuid.New(), Kind: MessageRunAll, QueuedAt: now}
}

// NewLinkChangedMessage builds a LINK_CHANGED message for a link.
func NewLinkChangedMessage(linkID int64, reason string, now time.Time) Message {
	return Message{ID: uuid.New(), Kind: MessageLinkChanged, LinkID: linkID, Reason: reason, QueuedAt: now}
}

// AuditEntry is one line of a link's append-only promotion log.
type AuditEntry struct {
	LinkID    int64
	Text      string
	CreatedAt time.Time
}
