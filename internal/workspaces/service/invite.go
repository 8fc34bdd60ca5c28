package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/cryptox"
	"github.com/zunohq/zuno/pkg/idx"
	"github.com/zunohq/zuno/pkg/slogx"
)

// InviteService issues, redeems, and declines workspace invitations. The
// accept path is the most delicate operation in the system: it may create a
// user, a subscription, a personal workspace, and a membership, and must
// never oversubscribe a seat, so everything runs under one transaction.
type InviteService struct {
	Store       store.Store
	Mailer      Mailer
	Signer      TokenIssuer
	FrontendURL string
}

// InviteOutcome distinguishes what InviteTeamMember actually did.
type InviteOutcome string

const (
	// InviteCreated means a fresh invite was written and mailed.
	InviteCreated InviteOutcome = "created"
	// InviteResent means an existing pending invite was refreshed and
	// mailed again; no extra seat was consumed.
	InviteResent InviteOutcome = "resent"
	// MemberReactivated means the invitee already had a deactivated
	// membership which was switched back on; no invite was written.
	MemberReactivated InviteOutcome = "reactivated"
)

// InviteResult is what InviteTeamMember produced.
type InviteResult struct {
	Outcome InviteOutcome
	Invite  domain.Invite
}

// AcceptResult is what AcceptInvite produced.
type AcceptResult struct {
	User                domain.User
	AccessToken         string
	Workspace           domain.Workspace
	Role                domain.Role
	IsNewUser           bool
	PersonalWorkspaceID string
}

// InviteTeamMember invites email into a workspace. The inviter must be an
// active owner or admin. Seat accounting counts active members plus pending
// invites against the workspace owner's plan, and the whole check-then-write
// runs in one transaction so two concurrent invites cannot both squeeze into
// the last seat.
func (s *InviteService) InviteTeamMember(ctx context.Context, workspaceID, inviterID, email string, role domain.Role) (InviteResult, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UTC()

	if !role.Valid() || role == domain.RoleOwner {
		return InviteResult{}, ErrInvalidRole
	}

	var (
		result    InviteResult
		workspace domain.Workspace
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The workspace must exist and be active.
		var err error
		workspace, err = tx.Workspaces().GetActiveWorkspaceByID(ctx, workspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return err
		}

		// 2. The inviter must be an active member with invite rights.
		inviter, err := tx.Memberships().GetMembership(ctx, workspaceID, inviterID)
		if err != nil || !inviter.IsActive {
			if err == nil || errors.Is(err, store.ErrNotFound) {
				return ErrNotAMember
			}
			return err
		}
		if !inviter.Role.CanInvite() {
			return ErrInsufficientRole
		}

		// 3. Seat accounting runs against the workspace owner's plan.
		sub, err := ensureSubscription(ctx, tx, workspace.OwnerID)
		if err != nil {
			return err
		}
		seatLimit := domain.LimitsFor(sub.Plan).SeatLimit

		activeMembers, err := tx.Memberships().CountActiveMembers(ctx, workspaceID)
		if err != nil {
			return err
		}
		pendingInvites, err := tx.Invites().CountPendingInvites(ctx, workspaceID, now)
		if err != nil {
			return err
		}

		// 4. An existing member short-circuits seat checks: active means
		// conflict, deactivated means reactivate in place.
		if invitee, err := tx.Users().GetVerifiedUserByEmail(ctx, email); err == nil {
			m, err := tx.Memberships().GetMembership(ctx, workspaceID, invitee.ID)
			switch {
			case err == nil && m.IsActive:
				return ErrAlreadyMember
			case err == nil:
				if err := tx.Memberships().ReactivateMembership(ctx, m.ID, role); err != nil {
					return err
				}
				result = InviteResult{Outcome: MemberReactivated}
				return nil
			case !errors.Is(err, store.ErrNotFound):
				return err
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// 5. A pending invite for this email is refreshed, not duplicated.
		// It already holds a seat, so no limit check.
		if pending, err := tx.Invites().GetPendingInviteForEmail(ctx, workspaceID, email, now); err == nil {
			expiresAt := now.Add(domain.InviteTTL)
			if err := tx.Invites().RefreshInvite(ctx, pending.ID, role, inviterID, expiresAt); err != nil {
				return err
			}
			pending.Role = role
			pending.InvitedBy = inviterID
			pending.ExpiresAt = expiresAt
			result = InviteResult{Outcome: InviteResent, Invite: pending}
			return nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// 6. A fresh invite consumes a seat, so gate on occupancy first.
		if activeMembers+pendingInvites >= seatLimit {
			return &SeatLimitError{
				Plan:           sub.Plan,
				SeatLimit:      seatLimit,
				ActiveMembers:  activeMembers,
				PendingInvites: pendingInvites,
			}
		}

		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}
		inv := domain.Invite{
			ID:                     idx.New().String(),
			WorkspaceID:            workspaceID,
			InvitedBy:              inviterID,
			Email:                  email,
			Role:                   role,
			Token:                  token,
			Status:                 domain.InviteStatusPending,
			InvitedToWorkspaceName: workspace.Name,
			ExpiresAt:              now.Add(domain.InviteTTL),
		}
		if err := tx.Invites().CreateInvite(ctx, inv); err != nil {
			return err
		}
		result = InviteResult{Outcome: InviteCreated, Invite: inv}
		return nil
	})
	if err != nil {
		return InviteResult{}, err
	}

	log.Info("invite processed",
		slog.String("workspace_id", workspaceID),
		slog.String("outcome", string(result.Outcome)),
	)

	// Email after commit, best effort.
	if s.Mailer != nil && result.Outcome != MemberReactivated {
		inviterName := "A teammate"
		if inviter, err := s.Store.Users().GetUserByID(ctx, inviterID); err == nil {
			inviterName = inviter.FullName
		}
		link := s.FrontendURL + "/invite?token=" + result.Invite.Token
		if err := s.Mailer.SendInvitationEmail(ctx, email, workspace.Name, inviterName, link, string(role)); err != nil {
			log.Warn("failed to send invitation email",
				slog.String("invite_id", result.Invite.ID),
				slog.Any("error", err),
			)
		}
	}

	return result, nil
}

// InviteDetailsResult is what the public invite landing page renders.
type InviteDetailsResult struct {
	Invite    domain.Invite
	Workspace domain.Workspace

	// UserExists reports whether a verified account already holds the
	// invited email, so the frontend knows whether to show a signup form.
	UserExists bool
}

// InviteDetails resolves a token for the public invite landing page. An
// invite found past its deadline is transitioned to expired on the spot.
func (s *InviteService) InviteDetails(ctx context.Context, token string) (InviteDetailsResult, error) {
	inv, err := s.Store.Invites().GetPendingInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InviteDetailsResult{}, ErrInviteNotFound
		}
		return InviteDetailsResult{}, err
	}

	if inv.Expired(time.Now().UTC()) {
		if err := s.Store.Invites().MarkInviteExpired(ctx, inv.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return InviteDetailsResult{}, err
		}
		return InviteDetailsResult{}, ErrInviteExpired
	}

	ws, err := s.Store.Workspaces().GetActiveWorkspaceByID(ctx, inv.WorkspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InviteDetailsResult{}, ErrWorkspaceNotFound
		}
		return InviteDetailsResult{}, err
	}

	userExists := false
	if _, err := s.Store.Users().GetVerifiedUserByEmail(ctx, inv.Email); err == nil {
		userExists = true
	} else if !errors.Is(err, store.ErrNotFound) {
		return InviteDetailsResult{}, err
	}

	return InviteDetailsResult{Invite: inv, Workspace: ws, UserExists: userExists}, nil
}

// AcceptInvite redeems an invite token. Existing verified users join
// directly; unknown emails become new, pre-verified accounts provisioned
// with a free subscription and personal workspace, and a registration that
// never got verified is claimed the same way. All writes share one
// transaction, the seat check runs before any of them, and the guarded
// status flip means that of two concurrent accepts of the same token exactly
// one commits.
func (s *InviteService) AcceptInvite(ctx context.Context, token, fullName, password string) (AcceptResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	inv, err := s.Store.Invites().GetPendingInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AcceptResult{}, ErrInviteNotFound
		}
		return AcceptResult{}, err
	}

	// An overdue invite is expired on the spot, outside the accept
	// transaction, so the marker sticks regardless of what follows.
	if inv.Expired(now) {
		if err := s.Store.Invites().MarkInviteExpired(ctx, inv.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return AcceptResult{}, err
		}
		return AcceptResult{}, ErrInviteExpired
	}

	var result AcceptResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Re-read inside the transaction; a concurrent accept or decline
		// may have consumed the token since the lookup above.
		var err error
		inv, err = tx.Invites().GetPendingInviteByToken(ctx, token)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return err
		}

		// 2. The workspace must still be active.
		ws, err := tx.Workspaces().GetActiveWorkspaceByID(ctx, inv.WorkspaceID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceNotFound
			}
			return err
		}

		// 3. Resolve the invitee. A verified account joins as-is. A stale
		// unverified registration with this email gets claimed further
		// down, the invite token proving control of the mailbox.
		var (
			user        domain.User
			isNewUser   bool
			claimStale  bool
			existingMem domain.Membership
			hasExistMem bool
		)
		user, err = tx.Users().GetUserByEmail(ctx, inv.Email)
		switch {
		case err == nil:
			if !user.IsActive {
				return ErrUserDeactivated
			}
			if !user.IsVerified {
				claimStale = true
				break
			}
			m, err := tx.Memberships().GetMembership(ctx, ws.ID, user.ID)
			switch {
			case err == nil && m.IsActive:
				return ErrAlreadyMember
			case err == nil:
				existingMem, hasExistMem = m, true
			case !errors.Is(err, store.ErrNotFound):
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			isNewUser = true
		default:
			return err
		}

		// 4. Seat check before anything is created. Accepting converts a
		// pending invite (this one) into an active member, so only the
		// member count is gated here.
		sub, err := ensureSubscription(ctx, tx, ws.OwnerID)
		if err != nil {
			return err
		}
		seatLimit := domain.LimitsFor(sub.Plan).SeatLimit

		activeMembers, err := tx.Memberships().CountActiveMembers(ctx, ws.ID)
		if err != nil {
			return err
		}
		if activeMembers >= seatLimit {
			pendingInvites, err := tx.Invites().CountPendingInvites(ctx, ws.ID, now)
			if err != nil {
				return err
			}
			return &SeatLimitError{
				Plan:           sub.Plan,
				SeatLimit:      seatLimit,
				ActiveMembers:  activeMembers,
				PendingInvites: pendingInvites,
			}
		}

		// 5. Provision the account. A brand new user is created verified;
		// a stale unverified registration is claimed in place with the name
		// and credentials supplied here. Either way the account was never
		// provisioned, so it gets its free subscription and personal
		// workspace now.
		if isNewUser || claimStale {
			if strings.TrimSpace(fullName) == "" || password == "" {
				return ErrNewUserDetailsRequired
			}
			hash, err := cryptox.HashPassword(password)
			if err != nil {
				return err
			}
			if claimStale {
				if err := tx.Users().ClaimUnverifiedUser(ctx, user.ID, fullName, hash); err != nil {
					return err
				}
				user.FullName = fullName
				user.PasswordHash = hash
				user.IsVerified = true
				user.VerificationToken = nil
				user.VerificationTokenExpires = nil
			} else {
				user = domain.User{
					ID:           idx.New().String(),
					Email:        inv.Email,
					FullName:     fullName,
					PasswordHash: hash,
					IsVerified:   true,
					IsActive:     true,
				}
				if err := tx.Users().CreateUser(ctx, user); err != nil {
					if errors.Is(err, store.ErrAlreadyExists) {
						return ErrEmailTaken
					}
					return err
				}
			}
			if _, err := ensureSubscription(ctx, tx, user.ID); err != nil {
				return err
			}
			personal, err := createDefaultWorkspace(ctx, tx, user.ID, user.FullName)
			if err != nil {
				return err
			}
			result.PersonalWorkspaceID = personal.ID
		}

		// 6. Join the inviting workspace.
		if hasExistMem {
			if err := tx.Memberships().ReactivateMembership(ctx, existingMem.ID, inv.Role); err != nil {
				return err
			}
		} else {
			m := domain.Membership{
				ID:          idx.New().String(),
				WorkspaceID: ws.ID,
				UserID:      user.ID,
				Role:        inv.Role,
				IsActive:    true,
			}
			if err := tx.Memberships().CreateMembership(ctx, m); err != nil {
				return err
			}
		}

		// 7. Flip the invite. Guarded on status still being pending; losing
		// the race rolls everything above back.
		if err := tx.Invites().MarkInviteAccepted(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return err
		}

		result.User = user
		result.Workspace = ws
		result.Role = inv.Role
		result.IsNewUser = isNewUser || claimStale
		return nil
	})
	if err != nil {
		return AcceptResult{}, err
	}

	accessToken, err := s.Signer.Issue(result.User.Email, result.User.ID)
	if err != nil {
		log.Error("failed to issue access token after accept", slog.Any("error", err))
		return AcceptResult{}, err
	}
	result.AccessToken = accessToken

	log.Info("invite accepted",
		slog.String("invite_id", inv.ID),
		slog.String("workspace_id", result.Workspace.ID),
		slog.String("user_id", result.User.ID),
		slog.Bool("new_user", result.IsNewUser),
	)
	return result, nil
}

// DeclineInvite turns down a pending invite. The caller must present both
// the token and the email it was addressed to, so a leaked token alone
// cannot decline on someone's behalf.
func (s *InviteService) DeclineInvite(ctx context.Context, token, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	err := s.Store.Invites().MarkInviteDeclined(ctx, token, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInviteNotFound
	}
	return err
}

// PendingInvitesFor lists open invites addressed to email across all
// workspaces, for the logged-in user's notification surface.
func (s *InviteService) PendingInvitesFor(ctx context.Context, email string) ([]domain.Invite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.Store.Invites().ListPendingByEmail(ctx, email, time.Now().UTC())
}

// SentInvites lists every invite a workspace has issued, any status. Only
// active owners and admins may look.
func (s *InviteService) SentInvites(ctx context.Context, workspaceID, requesterID string) ([]domain.Invite, error) {
	m, err := s.Store.Memberships().GetMembership(ctx, workspaceID, requesterID)
	if err != nil || !m.IsActive {
		if err == nil || errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, err
	}
	if !m.Role.CanInvite() {
		return nil, ErrInsufficientRole
	}
	return s.Store.Invites().ListByWorkspace(ctx, workspaceID)
}
