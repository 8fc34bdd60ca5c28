package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/store"
	"github.com/zunohq/zuno/pkg/idx"
	"github.com/zunohq/zuno/pkg/slogx"
)

// SubscriptionService resolves the plan a user is on. Subscriptions are
// created lazily: the first operation that needs one gets a free/active
// subscription written for the owner.
type SubscriptionService struct {
	Store store.Store
}

// EnsureSubscription returns the owner's subscription, creating the default
// free one if none exists yet.
func (s *SubscriptionService) EnsureSubscription(ctx context.Context, ownerID string) (domain.Subscription, error) {
	return ensureSubscription(ctx, s.Store, ownerID)
}

// CurrentSeatLimit returns the per-workspace seat limit granted by the
// owner's plan.
func (s *SubscriptionService) CurrentSeatLimit(ctx context.Context, ownerID string) (int, error) {
	sub, err := ensureSubscription(ctx, s.Store, ownerID)
	if err != nil {
		return 0, err
	}
	return domain.LimitsFor(sub.Plan).SeatLimit, nil
}

// CurrentPlanDetails returns the owner's subscription together with the
// limits its plan grants.
func (s *SubscriptionService) CurrentPlanDetails(ctx context.Context, ownerID string) (domain.Subscription, domain.PlanLimits, error) {
	sub, err := ensureSubscription(ctx, s.Store, ownerID)
	if err != nil {
		return domain.Subscription{}, domain.PlanLimits{}, err
	}
	return sub, domain.LimitsFor(sub.Plan), nil
}

// ensureSubscription is the transaction-friendly worker behind the service:
// it runs against whatever Store it is handed, so orchestrators can call it
// inside their own transaction. Idempotent under concurrent calls for the
// same owner: the unique owner_id index makes the second insert lose, and
// the loser re-reads the winner's row.
func ensureSubscription(ctx context.Context, st store.Store, ownerID string) (domain.Subscription, error) {
	log := slogx.FromContext(ctx)

	sub, err := st.Subscriptions().GetSubscriptionByOwner(ctx, ownerID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch subscription", slog.Any("error", err))
		return domain.Subscription{}, err
	}

	sub = domain.Subscription{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		Plan:    domain.PlanFree,
		Status:  domain.SubscriptionActive,
	}
	if err := st.Subscriptions().CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a create race; the other caller's subscription stands.
			return st.Subscriptions().GetSubscriptionByOwner(ctx, ownerID)
		}
		log.Error("failed to create default subscription",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		return domain.Subscription{}, err
	}

	log.Debug("default subscription created",
		slog.String("subscription_id", sub.ID),
		slog.String("owner_id", ownerID),
	)
	return sub, nil
}
