package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/cryptox"
	"github.com/zunohq/zuno/pkg/idx"
)

func newInviteService(t *testing.T) (*InviteService, *recordingMailer) {
	t.Helper()

	mailer := &recordingMailer{}
	svc := &InviteService{
		Store:       newTestStore(t),
		Mailer:      mailer,
		Signer:      newTestSigner(),
		FrontendURL: "https://app.test",
	}
	return svc, mailer
}

func TestInviteTeamMember(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	result, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "New@Example.com", domain.RoleMember)
	require.NoError(t, err)
	require.Equal(t, InviteCreated, result.Outcome)
	require.Equal(t, "new@example.com", result.Invite.Email)
	require.Equal(t, domain.InviteStatusPending, result.Invite.Status)
	require.Equal(t, "Acme", result.Invite.InvitedToWorkspaceName)
	require.NotEmpty(t, result.Invite.Token)

	require.Len(t, mailer.Invitations, 1)
	require.Equal(t, "new@example.com", mailer.Invitations[0].To)
	require.Contains(t, mailer.Invitations[0].Link, result.Invite.Token)

	// One pending seat occupied.
	pending, err := st.Invites().CountPendingInvites(ctx, ws.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 1, pending)
}

func TestInviteTeamMemberResendRefreshes(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	admin := seedVerifiedUser(t, st, "admin@example.com", "Arti Admin")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")
	seedMember(t, st, ws, admin, domain.RoleAdmin)

	first, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "new@example.com", domain.RoleMember)
	require.NoError(t, err)

	// Re-inviting the same email refreshes the invite instead of stacking a
	// second one, and the new sender and role stick.
	second, err := svc.InviteTeamMember(ctx, ws.ID, admin.ID, "new@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, InviteResent, second.Outcome)
	require.Equal(t, first.Invite.ID, second.Invite.ID)
	require.Equal(t, first.Invite.Token, second.Invite.Token)
	require.Equal(t, domain.RoleAdmin, second.Invite.Role)
	require.Equal(t, admin.ID, second.Invite.InvitedBy)

	pending, err := st.Invites().CountPendingInvites(ctx, ws.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 1, pending)

	// Both the original and the resend were mailed.
	require.Len(t, mailer.Invitations, 2)
}

func TestInviteTeamMemberAuthorization(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	member := seedVerifiedUser(t, st, "member@example.com", "Mel Member")
	outsider := seedVerifiedUser(t, st, "outsider@example.com", "Oscar Out")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")
	seedMember(t, st, ws, member, domain.RoleMember)

	t.Run("plain members cannot invite", func(t *testing.T) {
		_, err := svc.InviteTeamMember(ctx, ws.ID, member.ID, "x@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("non-members cannot invite", func(t *testing.T) {
		_, err := svc.InviteTeamMember(ctx, ws.ID, outsider.ID, "x@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrNotAMember)
	})

	t.Run("owner role cannot be granted by invite", func(t *testing.T) {
		_, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "x@example.com", domain.RoleOwner)
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("active members cannot be re-invited", func(t *testing.T) {
		_, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, member.Email, domain.RoleMember)
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		_, err := svc.InviteTeamMember(ctx, "missing", owner.ID, "x@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrWorkspaceNotFound)
	})
}

func TestInviteTeamMemberReactivatesFormerMember(t *testing.T) {
	ctx := context.Background()
	svc, mailer := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	former := seedVerifiedUser(t, st, "former@example.com", "Fred Former")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	m := domain.Membership{
		ID:          idx.New().String(),
		WorkspaceID: ws.ID,
		UserID:      former.ID,
		Role:        domain.RoleMember,
		IsActive:    false,
	}
	require.NoError(t, st.Memberships().CreateMembership(ctx, m))

	result, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, former.Email, domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, MemberReactivated, result.Outcome)

	got, err := st.Memberships().GetMembership(ctx, ws.ID, former.ID)
	require.NoError(t, err)
	require.True(t, got.IsActive)
	require.Equal(t, domain.RoleAdmin, got.Role)

	// Reactivation writes no invite and sends no mail.
	require.Empty(t, mailer.Invitations)
	pending, err := st.Invites().CountPendingInvites(ctx, ws.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Zero(t, pending)
}

func TestInviteSeatLimitCountsPendingInvites(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	// Fill the free plan to 4 active members.
	for i := 0; i < 3; i++ {
		u := seedVerifiedUser(t, st, fmt.Sprintf("member%d@example.com", i), "Mel Member")
		seedMember(t, st, ws, u, domain.RoleMember)
	}

	// One pending invite takes the fifth seat.
	_, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "pending@example.com", domain.RoleMember)
	require.NoError(t, err)

	// The sixth invite is rejected with exact occupancy in the message.
	_, err = svc.InviteTeamMember(ctx, ws.ID, owner.ID, "overflow@example.com", domain.RoleMember)
	require.ErrorIs(t, err, ErrSeatLimitExceeded)
	require.Contains(t, err.Error(), "4 active members and 1 pending invites")
	require.Contains(t, err.Error(), "0 seat(s) available")

	var seatErr *SeatLimitError
	require.ErrorAs(t, err, &seatErr)
	require.Equal(t, 5, seatErr.SeatLimit)
	require.Equal(t, 4, seatErr.ActiveMembers)
	require.Equal(t, 1, seatErr.PendingInvites)
}

func TestAcceptInviteNewUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)

	result, err := svc.AcceptInvite(ctx, invited.Invite.Token, "Jane Doe", "correct horse battery")
	require.NoError(t, err)
	require.True(t, result.IsNewUser)
	require.Equal(t, ws.ID, result.Workspace.ID)
	require.Equal(t, domain.RoleMember, result.Role)
	require.NotEmpty(t, result.AccessToken)

	// The account is born verified.
	user, err := st.Users().GetVerifiedUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, result.User.ID, user.ID)

	// Personal workspace provisioned alongside.
	personal, err := st.Workspaces().GetWorkspaceByID(ctx, result.PersonalWorkspaceID)
	require.NoError(t, err)
	require.Equal(t, "Jane's Workspace", personal.Name)
	require.Equal(t, user.ID, personal.OwnerID)

	// Free subscription for the new account.
	sub, err := st.Subscriptions().GetSubscriptionByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, sub.Plan)

	// Membership in the inviting workspace.
	m, err := st.Memberships().GetMembership(ctx, ws.ID, user.ID)
	require.NoError(t, err)
	require.True(t, m.IsActive)
	require.Equal(t, domain.RoleMember, m.Role)

	// The invite left the pending state, so the seat moved from pending to
	// active.
	pending, err := st.Invites().CountPendingInvites(ctx, ws.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Zero(t, pending)
	active, err := st.Memberships().CountActiveMembers(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, 2, active)
}

func TestAcceptInviteExistingUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	jane := seedVerifiedUser(t, st, "jane@example.com", "Jane Doe")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, jane.Email, domain.RoleAdmin)
	require.NoError(t, err)

	// Existing users need no name or password.
	result, err := svc.AcceptInvite(ctx, invited.Invite.Token, "", "")
	require.NoError(t, err)
	require.False(t, result.IsNewUser)
	require.Equal(t, jane.ID, result.User.ID)
	require.Equal(t, domain.RoleAdmin, result.Role)
	require.Empty(t, result.PersonalWorkspaceID)
}

func TestAcceptInviteRequiresDetailsForNewUsers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = svc.AcceptInvite(ctx, invited.Invite.Token, "", "")
	require.ErrorIs(t, err, ErrNewUserDetailsRequired)

	// The failed attempt created nothing and the invite is still pending.
	_, err = st.Users().GetUserByEmail(ctx, "jane@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Invites().GetPendingInviteByToken(ctx, invited.Invite.Token)
	require.NoError(t, err)
}

func TestAcceptInviteReplayFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = svc.AcceptInvite(ctx, invited.Invite.Token, "Jane Doe", "correct horse battery")
	require.NoError(t, err)

	// A second redemption of the same token fails.
	_, err = svc.AcceptInvite(ctx, invited.Invite.Token, "Jane Doe", "correct horse battery")
	require.ErrorIs(t, err, ErrInviteNotFound)

	// So does declining after acceptance.
	err = svc.DeclineInvite(ctx, invited.Invite.Token, "jane@example.com")
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestAcceptInviteExpired(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	inv := domain.Invite{
		ID:                     idx.New().String(),
		WorkspaceID:            ws.ID,
		InvitedBy:              owner.ID,
		Email:                  "late@example.com",
		Role:                   domain.RoleMember,
		Token:                  "expired-token",
		Status:                 domain.InviteStatusPending,
		InvitedToWorkspaceName: ws.Name,
		ExpiresAt:              time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))

	_, err := svc.AcceptInvite(ctx, inv.Token, "Late Larry", "correct horse battery")
	require.ErrorIs(t, err, ErrInviteExpired)

	// The invite was transitioned to expired and no account was created.
	_, err = st.Invites().GetPendingInviteByToken(ctx, inv.Token)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByEmail(ctx, "late@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAcceptInviteSeatCheckBeforeCreation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	// Invite issued while seats were free.
	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)

	// The workspace then fills to the free plan's five seats.
	for i := 0; i < 4; i++ {
		u := seedVerifiedUser(t, st, fmt.Sprintf("member%d@example.com", i), "Mel Member")
		seedMember(t, st, ws, u, domain.RoleMember)
	}

	_, err = svc.AcceptInvite(ctx, invited.Invite.Token, "Jane Doe", "correct horse battery")
	require.ErrorIs(t, err, ErrSeatLimitExceeded)

	// Rejection happened before any user creation.
	_, err = st.Users().GetUserByEmail(ctx, "jane@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAcceptInviteConcurrentSameToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	jane := seedVerifiedUser(t, st, "jane@example.com", "Jane Doe")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, jane.Email, domain.RoleMember)
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AcceptInvite(ctx, invited.Invite.Token, "", "")
		}(i)
	}
	wg.Wait()

	// Exactly one wins; the loser sees the invite as already processed.
	var ok, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, ErrInviteNotFound)
			lost++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, lost)

	// One membership, not two.
	active, err := st.Memberships().CountActiveMembers(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, 2, active)
}

func TestAcceptInviteConcurrentLastSeat(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	// Two invites issued while the workspace was nearly empty.
	first, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "one@example.com", domain.RoleMember)
	require.NoError(t, err)
	second, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "two@example.com", domain.RoleMember)
	require.NoError(t, err)

	// Then it fills to four active members, leaving one seat for two invites.
	for i := 0; i < 3; i++ {
		u := seedVerifiedUser(t, st, fmt.Sprintf("member%d@example.com", i), "Mel Member")
		seedMember(t, st, ws, u, domain.RoleMember)
	}

	tokens := []string{first.Invite.Token, second.Invite.Token}
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			_, errs[i] = svc.AcceptInvite(ctx, token, "New Person", "correct horse battery")
		}(i, token)
	}
	wg.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, ErrSeatLimitExceeded)
			rejected++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, rejected)

	active, err := st.Memberships().CountActiveMembers(ctx, ws.ID)
	require.NoError(t, err)
	require.Equal(t, 5, active)
}

func TestDeclineInvite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)

	t.Run("email must match the invite", func(t *testing.T) {
		err := svc.DeclineInvite(ctx, invited.Invite.Token, "impostor@example.com")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("matching pair declines", func(t *testing.T) {
		require.NoError(t, svc.DeclineInvite(ctx, invited.Invite.Token, "Jane@example.com"))

		// The seat is released.
		pending, err := st.Invites().CountPendingInvites(ctx, ws.ID, time.Now().UTC())
		require.NoError(t, err)
		require.Zero(t, pending)
	})

	t.Run("decline is single use", func(t *testing.T) {
		err := svc.DeclineInvite(ctx, invited.Invite.Token, "jane@example.com")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestInviteDetails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	jane := seedVerifiedUser(t, st, "jane@example.com", "Jane Doe")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	known, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, jane.Email, domain.RoleMember)
	require.NoError(t, err)
	unknown, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "new@example.com", domain.RoleMember)
	require.NoError(t, err)

	t.Run("existing account flagged", func(t *testing.T) {
		details, err := svc.InviteDetails(ctx, known.Invite.Token)
		require.NoError(t, err)
		require.True(t, details.UserExists)
		require.Equal(t, "Acme", details.Workspace.Name)
	})

	t.Run("unknown account flagged", func(t *testing.T) {
		details, err := svc.InviteDetails(ctx, unknown.Invite.Token)
		require.NoError(t, err)
		require.False(t, details.UserExists)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.InviteDetails(ctx, "bogus")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("expired invite is marked on read", func(t *testing.T) {
		inv := domain.Invite{
			ID:                     idx.New().String(),
			WorkspaceID:            ws.ID,
			Email:                  "late@example.com",
			Role:                   domain.RoleMember,
			Token:                  "stale-token",
			Status:                 domain.InviteStatusPending,
			InvitedToWorkspaceName: ws.Name,
			ExpiresAt:              time.Now().UTC().Add(-time.Minute),
		}
		require.NoError(t, st.Invites().CreateInvite(ctx, inv))

		_, err := svc.InviteDetails(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteExpired)

		_, err = st.Invites().GetPendingInviteByToken(ctx, inv.Token)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPendingInvitesFor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	other := seedVerifiedUser(t, st, "other@example.com", "Oz Other")
	ws1 := seedWorkspace(t, st, owner, "Acme", "acme")
	ws2 := seedWorkspace(t, st, other, "Globex", "globex")

	_, err := svc.InviteTeamMember(ctx, ws1.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)
	_, err = svc.InviteTeamMember(ctx, ws2.ID, other.ID, "jane@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	invites, err := svc.PendingInvitesFor(ctx, "Jane@Example.com")
	require.NoError(t, err)
	require.Len(t, invites, 2)
}

func TestSentInvitesRoleGated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	member := seedVerifiedUser(t, st, "member@example.com", "Mel Member")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")
	seedMember(t, st, ws, member, domain.RoleMember)

	_, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "jane@example.com", domain.RoleMember)
	require.NoError(t, err)

	invites, err := svc.SentInvites(ctx, ws.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, invites, 1)

	_, err = svc.SentInvites(ctx, ws.ID, member.ID)
	require.ErrorIs(t, err, ErrInsufficientRole)
}

func TestAcceptInviteClaimsUnverifiedRegistration(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	// A registration that never got verified, its token long since swept.
	oldHash, err := cryptox.HashPassword("old forgotten password")
	require.NoError(t, err)
	stale := domain.User{
		ID:           idx.New().String(),
		Email:        "stale@example.com",
		FullName:     "Stale Signup",
		PasswordHash: oldHash,
		IsVerified:   false,
		IsActive:     true,
	}
	require.NoError(t, st.Users().CreateUser(ctx, stale))

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "stale@example.com", domain.RoleMember)
	require.NoError(t, err)

	// The claim needs fresh details like any new signup.
	_, err = svc.AcceptInvite(ctx, invited.Invite.Token, "", "")
	require.ErrorIs(t, err, ErrNewUserDetailsRequired)

	result, err := svc.AcceptInvite(ctx, invited.Invite.Token, "Sally Claimed", "brand new password")
	require.NoError(t, err)
	require.True(t, result.IsNewUser)
	require.NotEmpty(t, result.PersonalWorkspaceID)

	// The stale row was claimed in place, not duplicated.
	require.Equal(t, stale.ID, result.User.ID)
	got, err := st.Users().GetUserByID(ctx, stale.ID)
	require.NoError(t, err)
	require.True(t, got.IsVerified)
	require.Nil(t, got.VerificationToken)
	require.Equal(t, "Sally Claimed", got.FullName)
	require.NoError(t, cryptox.VerifyPassword("brand new password", got.PasswordHash))
	require.ErrorIs(t, cryptox.VerifyPassword("old forgotten password", got.PasswordHash), cryptox.ErrPasswordMismatch)

	// Joined the inviting workspace and got the usual provisioning.
	m, err := st.Memberships().GetMembership(ctx, ws.ID, stale.ID)
	require.NoError(t, err)
	require.True(t, m.IsActive)

	personal, err := st.Workspaces().GetDefaultByOwner(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, result.PersonalWorkspaceID, personal.ID)

	sub, err := st.Subscriptions().GetSubscriptionByOwner(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, sub.Plan)
}

func TestAcceptInviteRejectsDeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInviteService(t)
	st := svc.Store

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	gone := domain.User{
		ID:           idx.New().String(),
		Email:        "gone@example.com",
		FullName:     "Gone Person",
		PasswordHash: "hash",
		IsVerified:   true,
		IsActive:     false,
	}
	require.NoError(t, st.Users().CreateUser(ctx, gone))

	invited, err := svc.InviteTeamMember(ctx, ws.ID, owner.ID, "gone@example.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = svc.AcceptInvite(ctx, invited.Invite.Token, "", "")
	require.ErrorIs(t, err, ErrUserDeactivated)

	// No session, no membership, and the invite is still pending.
	_, err = st.Memberships().GetMembership(ctx, ws.ID, gone.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Invites().GetPendingInviteByToken(ctx, invited.Invite.Token)
	require.NoError(t, err)
}
