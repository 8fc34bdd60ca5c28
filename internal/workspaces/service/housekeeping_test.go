package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/idx"
)

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	owner := seedVerifiedUser(t, st, "owner@example.com", "Olive Owner")
	ws := seedWorkspace(t, st, owner, "Acme", "acme")

	// One overdue invite and one that is still fine.
	stale := domain.Invite{
		ID: idx.New().String(), WorkspaceID: ws.ID, Email: "stale@example.com",
		Role: domain.RoleMember, Token: "stale", Status: domain.InviteStatusPending,
		InvitedToWorkspaceName: ws.Name, ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	fresh := domain.Invite{
		ID: idx.New().String(), WorkspaceID: ws.ID, Email: "fresh@example.com",
		Role: domain.RoleMember, Token: "fresh", Status: domain.InviteStatusPending,
		InvitedToWorkspaceName: ws.Name, ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, stale))
	require.NoError(t, st.Invites().CreateInvite(ctx, fresh))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewHousekeepingService(st, logger, time.Hour)
	svc.Start()
	svc.Stop() // the startup sweep has run by the time Stop returns

	_, err := st.Invites().GetPendingInviteByToken(ctx, "stale")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Invites().GetPendingInviteByToken(ctx, "fresh")
	require.NoError(t, err)
}
