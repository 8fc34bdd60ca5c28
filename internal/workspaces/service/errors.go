package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken               = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("incorrect email or password")
	ErrEmailNotVerified         = errors.New("please verify your email before logging in")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrEmailAlreadyVerified     = errors.New("email is already verified")
	ErrUserDeactivated          = errors.New("this account has been deactivated")

	ErrWorkspaceNotFound = errors.New("workspace not found or inactive")
	ErrUserNotFound      = errors.New("user not found")

	ErrInviteNotFound = errors.New("invitation not found or already processed")
	ErrInviteExpired  = errors.New("invitation has expired")

	ErrNotAMember       = errors.New("you are not a member of this workspace")
	ErrInsufficientRole = errors.New("only owners and admins can invite members")
	ErrAlreadyMember    = errors.New("already a member of this workspace")
	ErrInvalidRole      = errors.New("invalid role")

	ErrNewUserDetailsRequired = errors.New("new users must provide full name and password")

	ErrSeatLimitExceeded      = errors.New("seat limit exceeded")
	ErrWorkspaceLimitExceeded = errors.New("workspace limit exceeded")
)

// SeatLimitError reports a workspace at capacity. It unwraps to
// ErrSeatLimitExceeded so callers can match with errors.Is while the message
// carries the exact occupancy.
type SeatLimitError struct {
	Plan           string
	SeatLimit      int
	ActiveMembers  int
	PendingInvites int
}

func (e *SeatLimitError) Error() string {
	available := e.SeatLimit - e.ActiveMembers - e.PendingInvites
	if available < 0 {
		available = 0
	}
	return fmt.Sprintf(
		"seat limit reached: workspace has %d active members and %d pending invites on the %s plan (limit %d), %d seat(s) available",
		e.ActiveMembers, e.PendingInvites, e.Plan, e.SeatLimit, available,
	)
}

func (e *SeatLimitError) Unwrap() error { return ErrSeatLimitExceeded }

// WorkspaceLimitError reports an owner at their plan's workspace cap.
type WorkspaceLimitError struct {
	Plan           string
	WorkspaceLimit int
	WorkspaceCount int
}

func (e *WorkspaceLimitError) Error() string {
	return fmt.Sprintf(
		"workspace limit reached: your %s plan allows only %d workspace(s)",
		e.Plan, e.WorkspaceLimit,
	)
}

func (e *WorkspaceLimitError) Unwrap() error { return ErrWorkspaceLimitExceeded }
