package store

import (
	"context"
	"errors"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface, implemented by concrete drivers
// (sqlite today). It exposes sub-repositories to keep concerns tidy and
// testable. Helper functions that must run inside a transaction accept a
// Store and are handed the Tx by the orchestrating service, so no step can
// commit on its own.
type Store interface {
	Users() Users
	Workspaces() Workspaces
	Memberships() Memberships
	Invites() Invites
	Subscriptions() Subscriptions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step mutations (invite acceptance,
	// workspace provisioning) atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback on top of the same repos.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by (lowercased) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetVerifiedUserByEmail returns a user by email only if verified.
	GetVerifiedUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByVerificationToken returns the user holding a verification
	// token that has not expired at now.
	GetUserByVerificationToken(ctx context.Context, token string, now time.Time) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// MarkUserVerified sets is_verified and clears the verification token.
	MarkUserVerified(ctx context.Context, userID string) error

	// SetVerificationToken replaces the verification token on an
	// unverified user. Returns ErrNotFound when the user is missing or
	// already verified.
	SetVerificationToken(ctx context.Context, userID, token string, expires time.Time) error

	// ClaimUnverifiedUser completes a stale unverified registration in
	// place: new name and credentials, verified, token cleared. Guarded on
	// the row still being unverified; ErrNotFound otherwise.
	ClaimUnverifiedUser(ctx context.Context, userID, fullName, passwordHash string) error

	// ClearExpiredVerificationTokens is housekeeping: it nulls out
	// verification tokens whose deadline passed, returning the row count.
	ClearExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error)
}

type Workspaces interface {
	// CreateWorkspace inserts a new workspace. Returns ErrAlreadyExists on
	// slug collision.
	CreateWorkspace(ctx context.Context, w domain.Workspace) error

	// GetWorkspaceByID returns a workspace regardless of active state.
	GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)

	// GetActiveWorkspaceByID returns the workspace only when is_active.
	GetActiveWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)

	// SlugExists reports whether any workspace already claims slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// CountByOwner returns the number of workspaces owned by ownerID.
	CountByOwner(ctx context.Context, ownerID string) (int, error)

	// ListByOwner returns owned workspaces, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error)

	// GetDefaultByOwner returns the owner's first-created workspace.
	GetDefaultByOwner(ctx context.Context, ownerID string) (domain.Workspace, error)
}

// MemberDetail pairs a membership row with its user for listing endpoints.
type MemberDetail struct {
	Membership domain.Membership
	User       domain.User
}

type Memberships interface {
	// CreateMembership inserts a membership. Returns ErrAlreadyExists when a
	// row for (workspace, user) already exists, active or not.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership row for (workspace, user)
	// regardless of active state.
	GetMembership(ctx context.Context, workspaceID, userID string) (domain.Membership, error)

	// CountActiveMembers returns the number of active members in a workspace.
	CountActiveMembers(ctx context.Context, workspaceID string) (int, error)

	// ReactivateMembership flips is_active back on and assigns role.
	ReactivateMembership(ctx context.Context, id string, role domain.Role) error

	// ListActiveMembers returns active members with user details, owners
	// first.
	ListActiveMembers(ctx context.Context, workspaceID string) ([]MemberDetail, error)
}

type Invites interface {
	// CreateInvite writes a new invite (token is stored as-is and indexed
	// unique).
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetPendingInviteByToken returns the pending invite for a token.
	GetPendingInviteByToken(ctx context.Context, token string) (domain.Invite, error)

	// GetPendingInviteForEmail returns a pending, non-expired invite for
	// (workspace, email), used for the resend path.
	GetPendingInviteForEmail(ctx context.Context, workspaceID, email string, now time.Time) (domain.Invite, error)

	// CountPendingInvites counts pending, non-expired invites for a
	// workspace. Together with CountActiveMembers this is the occupied-seat
	// tally.
	CountPendingInvites(ctx context.Context, workspaceID string, now time.Time) (int, error)

	// MarkInviteExpired transitions pending -> expired.
	MarkInviteExpired(ctx context.Context, id string) error

	// MarkInviteAccepted transitions pending -> accepted, recording at.
	// The update is guarded on status="pending" and returns ErrNotFound when
	// no row transitioned, which is how a concurrent double-accept loses.
	MarkInviteAccepted(ctx context.Context, id string, at time.Time) error

	// MarkInviteDeclined transitions pending -> declined for a matching
	// (token, email) pair. Returns ErrNotFound otherwise.
	MarkInviteDeclined(ctx context.Context, token, email string) error

	// RefreshInvite updates role, inviter, and deadline on a pending invite
	// that is being resent.
	RefreshInvite(ctx context.Context, id string, role domain.Role, invitedBy string, expiresAt time.Time) error

	// ListPendingByEmail returns pending, non-expired invites addressed to
	// email across all workspaces.
	ListPendingByEmail(ctx context.Context, email string, now time.Time) ([]domain.Invite, error)

	// ListByWorkspace returns all invites for a workspace, newest first.
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Invite, error)

	// MarkExpiredInvites is housekeeping: it transitions every pending
	// invite past its deadline to expired, returning the row count.
	MarkExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}

type Subscriptions interface {
	// CreateSubscription inserts a subscription. Returns ErrAlreadyExists
	// when the owner already has one, which makes lazy creation idempotent.
	CreateSubscription(ctx context.Context, s domain.Subscription) error

	// GetSubscriptionByOwner returns the owner's subscription.
	GetSubscriptionByOwner(ctx context.Context, ownerID string) (domain.Subscription, error)
}
