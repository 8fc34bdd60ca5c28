package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zunohq/zuno/internal/workspaces/domain"
)

func TestEnsureSubscriptionLazyCreation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SubscriptionService{Store: st}

	user := seedVerifiedUser(t, st, "jane@example.com", "Jane Doe")

	sub, err := svc.EnsureSubscription(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, sub.Plan)
	require.Equal(t, domain.SubscriptionActive, sub.Status)

	// Idempotent: a second call returns the same row.
	again, err := svc.EnsureSubscription(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, sub.ID, again.ID)
}

func TestCurrentPlanDetails(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SubscriptionService{Store: st}

	user := seedVerifiedUser(t, st, "pro@example.com", "Pat Pro")
	require.NoError(t, st.Subscriptions().CreateSubscription(ctx, domain.Subscription{
		ID: "sub-pro", OwnerID: user.ID, Plan: "pro", Status: domain.SubscriptionActive,
	}))

	sub, limits, err := svc.CurrentPlanDetails(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "pro", sub.Plan)
	require.Equal(t, 20, limits.SeatLimit)
	require.Equal(t, 5, limits.WorkspaceLimit)
}

func TestUnknownPlanFallsBackToFreeLimits(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SubscriptionService{Store: st}

	user := seedVerifiedUser(t, st, "legacy@example.com", "Lee Legacy")
	require.NoError(t, st.Subscriptions().CreateSubscription(ctx, domain.Subscription{
		ID: "sub-legacy", OwnerID: user.ID, Plan: "enterprise-2019", Status: domain.SubscriptionActive,
	}))

	limit, err := svc.CurrentSeatLimit(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 5, limit)
}
