package domain

import "time"

// SourceKind identifies the kind of reward source behind a claim
type SourceKind string

const (
	SourceDaily          SourceKind = "daily"
	SourceLevelMilestone SourceKind = "level_milestone"
	SourceNotification   SourceKind = "notification"
	SourceQuest          SourceKind = "quest"
	SourceOfflineSession SourceKind = "offline_session"
)

// ValidSourceKinds lists every claimable source kind
var ValidSourceKinds = []SourceKind{
	SourceDaily,
	SourceLevelMilestone,
	SourceNotification,
	SourceQuest,
	SourceOfflineSession,
}

// IsValidSourceKind reports whether s names a known source kind
func IsValidSourceKind(s SourceKind) bool {
	for _, k := range ValidSourceKinds {
		if k == s {
			return true
		}
	}
	return false
}

// ClaimOutcome is the result of a TryClaim call
type ClaimOutcome string

const (
	// ClaimGranted means the claim was recorded and rewards may be credited
	ClaimGranted ClaimOutcome = "granted"
	// ClaimAlreadyClaimed means a prior grant exists; no mutation occurred.
	// This is a normal idempotent outcome, not an error.
	ClaimAlreadyClaimed ClaimOutcome = "already_claimed"
)

// ClaimRecord is an append-only record of a granted claim. At most one
// record ever exists for a (user, source kind, key) tuple.
type ClaimRecord struct {
	UserID     string     `json:"user_id"`
	SourceKind SourceKind `json:"source_kind"`
	Key        string     `json:"key"`
	ClaimedAt  time.Time  `json:"claimed_at"`
}
