package zunosdk

import "time"

// ErrorResponse is the standard error envelope every endpoint returns on
// failure.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g. "invalid_request",
	// "seat_limit_exceeded")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest creates a new unverified account.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// RegisterResponse confirms the account was created and verification mail
// is on its way.
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// VerifyEmailRequest redeems an email verification token.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// VerifyEmailResponse reports the provisioning done on verification.
type VerifyEmailResponse struct {
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	Message     string `json:"message"`
}

// ResendVerificationRequest asks for the verification email to be sent
// again, minting a fresh token.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// ResendVerificationResponse deliberately says the same thing whether or
// not the address had an unverified account.
type ResendVerificationResponse struct {
	Message string `json:"message"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// User is the public shape of an account.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Workspace is the public shape of a workspace.
type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateWorkspaceRequest provisions an additional workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateWorkspaceResponse returns the workspace plus the plan context that
// allowed it.
type CreateWorkspaceResponse struct {
	Workspace      Workspace `json:"workspace"`
	Plan           string    `json:"plan"`
	WorkspaceCount int       `json:"workspace_count"`
	WorkspaceLimit int       `json:"workspace_limit"`
}

// WorkspaceListResponse wraps the owned-workspace listing.
type WorkspaceListResponse struct {
	Workspaces []Workspace `json:"workspaces"`
}

// Member is one row of a workspace member listing.
type Member struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberListResponse wraps a workspace's active members.
type MemberListResponse struct {
	WorkspaceID string   `json:"workspace_id"`
	Members     []Member `json:"members"`
}

// InviteMemberRequest invites an email address into a workspace.
type InviteMemberRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InviteMemberResponse reports what the invite call actually did: "created"
// for a fresh invite, "resent" when an open invite was refreshed, or
// "reactivated" when a deactivated member was switched back on.
type InviteMemberResponse struct {
	Outcome   string     `json:"outcome"`
	InviteID  string     `json:"invite_id,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Invite is the public shape of an invitation.
type Invite struct {
	ID            string    `json:"id"`
	WorkspaceID   string    `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	InvitedBy     string    `json:"invited_by,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// InviteDetailsResponse is what the public invite landing page renders.
type InviteDetailsResponse struct {
	Invite        Invite `json:"invite"`
	WorkspaceName string `json:"workspace_name"`

	// UserExists tells the frontend whether to render a login prompt or a
	// signup form.
	UserExists bool `json:"user_exists"`
}

// AcceptInviteRequest redeems an invite token. FullName and Password are
// required only when the invited email has no verified account yet.
type AcceptInviteRequest struct {
	Token    string `json:"token"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password,omitempty"`
}

// AcceptInviteResponse carries everything the frontend needs after joining:
// the session token, the joined workspace, and for brand-new accounts the
// personal workspace that was provisioned alongside.
type AcceptInviteResponse struct {
	AccessToken         string    `json:"access_token"`
	TokenType           string    `json:"token_type"`
	User                User      `json:"user"`
	Workspace           Workspace `json:"workspace"`
	Role                string    `json:"role"`
	IsNewUser           bool      `json:"is_new_user"`
	PersonalWorkspaceID string    `json:"personal_workspace_id,omitempty"`
}

// DeclineInviteRequest turns down an invite. Email must match the invite's
// addressee.
type DeclineInviteRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// PendingInvitesResponse lists open invites addressed to the caller.
type PendingInvitesResponse struct {
	Invites []Invite `json:"invites"`
}

// SentInvitesResponse lists every invite a workspace has issued.
type SentInvitesResponse struct {
	WorkspaceID string   `json:"workspace_id"`
	Invites     []Invite `json:"invites"`
}

// SubscriptionResponse reports the caller's plan and its limits.
type SubscriptionResponse struct {
	Plan           string `json:"plan"`
	Status         string `json:"status"`
	SeatLimit      int    `json:"seat_limit"`
	WorkspaceLimit int    `json:"workspace_limit"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
