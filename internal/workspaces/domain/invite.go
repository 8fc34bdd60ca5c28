package domain

import "time"

// InviteStatus is the lifecycle state of an invite. An invite transitions
// out of pending exactly once; the terminal states are final.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
	InviteStatusExpired  InviteStatus = "expired"
)

// InviteTTL is how long a fresh (or resent) invite stays redeemable.
const InviteTTL = 7 * 24 * time.Hour

type Invite struct {
	ID          string
	WorkspaceID string
	InvitedBy   string // user ID of the inviter, may be empty
	Email       string
	Role        Role
	Token       string // single-use, 256-bit, URL-safe
	Status      InviteStatus

	// Snapshot of the workspace name at invite time. Intentionally stale if
	// the workspace is renamed later.
	InvitedToWorkspaceName string

	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the invite's deadline has passed at now.
func (i Invite) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
