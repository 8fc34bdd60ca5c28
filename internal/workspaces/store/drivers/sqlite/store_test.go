package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/idx"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "hash",
		IsVerified:   true,
		IsActive:     true,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedWorkspaceRow(t *testing.T, st *Store, ownerID string) domain.Workspace {
	t.Helper()

	ws := domain.Workspace{
		ID:       idx.New().String(),
		Name:     "Acme",
		Slug:     "acme-" + idx.New().String(),
		OwnerID:  ownerID,
		IsActive: true,
	}
	require.NoError(t, st.Workspaces().CreateWorkspace(context.Background(), ws))
	return ws
}

func seedInviteRow(t *testing.T, st *Store, ws domain.Workspace, email, token string) domain.Invite {
	t.Helper()

	inv := domain.Invite{
		ID:                     idx.New().String(),
		WorkspaceID:            ws.ID,
		InvitedBy:              ws.OwnerID,
		Email:                  email,
		Role:                   domain.RoleMember,
		Token:                  token,
		Status:                 domain.InviteStatusPending,
		InvitedToWorkspaceName: ws.Name,
		ExpiresAt:              time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, st.Invites().CreateInvite(context.Background(), inv))
	return inv
}

func TestUniqueConstraintsMapToAlreadyExists(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	user := seedUser(t, st, "jane@example.com")

	t.Run("duplicate email", func(t *testing.T) {
		dup := user
		dup.ID = idx.New().String()
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	ws := seedWorkspaceRow(t, st, user.ID)

	t.Run("duplicate slug", func(t *testing.T) {
		dup := ws
		dup.ID = idx.New().String()
		err := st.Workspaces().CreateWorkspace(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate subscription owner", func(t *testing.T) {
		sub := domain.Subscription{
			ID: idx.New().String(), OwnerID: user.ID,
			Plan: domain.PlanFree, Status: domain.SubscriptionActive,
		}
		require.NoError(t, st.Subscriptions().CreateSubscription(ctx, sub))
		sub.ID = idx.New().String()
		err := st.Subscriptions().CreateSubscription(ctx, sub)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate membership pair", func(t *testing.T) {
		m := domain.Membership{
			ID: idx.New().String(), WorkspaceID: ws.ID, UserID: user.ID,
			Role: domain.RoleOwner, IsActive: true,
		}
		require.NoError(t, st.Memberships().CreateMembership(ctx, m))
		m.ID = idx.New().String()
		err := st.Memberships().CreateMembership(ctx, m)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestGuardedInviteTransitions(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	now := time.Now().UTC()

	owner := seedUser(t, st, "owner@example.com")
	ws := seedWorkspaceRow(t, st, owner.ID)

	t.Run("accept is single shot", func(t *testing.T) {
		inv := seedInviteRow(t, st, ws, "a@example.com", "token-a")

		require.NoError(t, st.Invites().MarkInviteAccepted(ctx, inv.ID, now))

		// The row already left pending; the guard reports no match.
		err := st.Invites().MarkInviteAccepted(ctx, inv.ID, now)
		require.ErrorIs(t, err, store.ErrNotFound)
		err = st.Invites().MarkInviteExpired(ctx, inv.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("decline matches token and email together", func(t *testing.T) {
		inv := seedInviteRow(t, st, ws, "b@example.com", "token-b")

		err := st.Invites().MarkInviteDeclined(ctx, inv.Token, "wrong@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.NoError(t, st.Invites().MarkInviteDeclined(ctx, inv.Token, "b@example.com"))
	})

	t.Run("housekeeping only touches overdue pending rows", func(t *testing.T) {
		fresh := seedInviteRow(t, st, ws, "c@example.com", "token-c")

		stale := seedInviteRow(t, st, ws, "d@example.com", "token-d")
		require.NoError(t, st.Invites().RefreshInvite(ctx, stale.ID, domain.RoleMember, owner.ID, now.Add(-time.Hour)))

		n, err := st.Invites().MarkExpiredInvites(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		_, err = st.Invites().GetPendingInviteByToken(ctx, fresh.Token)
		require.NoError(t, err)
		_, err = st.Invites().GetPendingInviteByToken(ctx, stale.Token)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	owner := seedUser(t, st, "owner@example.com")
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		ws := domain.Workspace{
			ID: idx.New().String(), Name: "Doomed", Slug: "doomed",
			OwnerID: owner.ID, IsActive: true,
		}
		if err := tx.Workspaces().CreateWorkspace(ctx, ws); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := st.Workspaces().SlugExists(ctx, "doomed")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestGuardedUserTransitions(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	future := time.Now().UTC().Add(time.Hour)

	token := "first-token"
	u := domain.User{
		ID:                       idx.New().String(),
		Email:                    "jane@example.com",
		FullName:                 "Jane Doe",
		PasswordHash:             "hash",
		IsActive:                 true,
		VerificationToken:        &token,
		VerificationTokenExpires: &future,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	t.Run("set token replaces on unverified rows only", func(t *testing.T) {
		require.NoError(t, st.Users().SetVerificationToken(ctx, u.ID, "second-token", future))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "second-token", *got.VerificationToken)

		require.NoError(t, st.Users().MarkUserVerified(ctx, u.ID))
		err = st.Users().SetVerificationToken(ctx, u.ID, "third-token", future)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("claim works once", func(t *testing.T) {
		v := domain.User{
			ID:           idx.New().String(),
			Email:        "stale@example.com",
			FullName:     "Stale Signup",
			PasswordHash: "old-hash",
			IsActive:     true,
		}
		require.NoError(t, st.Users().CreateUser(ctx, v))

		require.NoError(t, st.Users().ClaimUnverifiedUser(ctx, v.ID, "New Name", "new-hash"))

		got, err := st.Users().GetUserByID(ctx, v.ID)
		require.NoError(t, err)
		require.True(t, got.IsVerified)
		require.Equal(t, "New Name", got.FullName)
		require.Equal(t, "new-hash", got.PasswordHash)

		// Already verified; the guard reports no match.
		err = st.Users().ClaimUnverifiedUser(ctx, v.ID, "Another Name", "another-hash")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestVerificationTokenLookupHonoursExpiry(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	now := time.Now().UTC()

	token := "verification-token"
	expired := now.Add(-time.Minute)
	u := domain.User{
		ID:                       idx.New().String(),
		Email:                    "jane@example.com",
		FullName:                 "Jane Doe",
		PasswordHash:             "hash",
		IsActive:                 true,
		VerificationToken:        &token,
		VerificationTokenExpires: &expired,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	_, err := st.Users().GetUserByVerificationToken(ctx, token, now)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Housekeeping clears the stale token.
	n, err := st.Users().ClearExpiredVerificationTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Nil(t, got.VerificationToken)
}
