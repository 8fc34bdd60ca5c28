package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/zunohq/zuno/internal/workspaces/domain"
)

type subscriptionsRepo struct {
	db dbtx
}

func (r *subscriptionsRepo) CreateSubscription(ctx context.Context, s domain.Subscription) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subscriptions (id, owner_id, plan, status, current_period_end, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.OwnerID, s.Plan, s.Status, mapOptionalTime(s.CurrentPeriodEnd), now, now,
	)
	return mapConflict(err)
}

func (r *subscriptionsRepo) GetSubscriptionByOwner(ctx context.Context, ownerID string) (domain.Subscription, error) {
	var s domain.Subscription
	var periodEnd sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, plan, status, current_period_end, created_at, updated_at
		 FROM subscriptions WHERE owner_id = ?`,
		ownerID).Scan(
		&s.ID, &s.OwnerID, &s.Plan, &s.Status, &periodEnd, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Subscription{}, mapNotFound(err)
	}
	s.CurrentPeriodEnd = mapNullTimePtr(periodEnd)
	return s, nil
}
