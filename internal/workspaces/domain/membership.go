package domain

import "time"

// Role is a member's role within a workspace.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanInvite reports whether a member with this role may invite others.
func (r Role) CanInvite() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Membership links a user to a workspace. The (WorkspaceID, UserID) pair is
// unique: members are soft-deactivated rather than deleted, then reactivated
// on re-invite.
type Membership struct {
	ID          string
	WorkspaceID string
	UserID      string
	Role        Role
	IsActive    bool
	JoinedAt    time.Time
	UpdatedAt   time.Time
}
