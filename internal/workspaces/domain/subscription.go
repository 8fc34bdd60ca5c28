package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription records the plan a user pays for. Each user owns at most one
// subscription; a workspace's limits come from its owner's subscription.
type Subscription struct {
	ID               string
	OwnerID          string // user ID, unique
	Plan             string
	Status           SubscriptionStatus
	CurrentPeriodEnd *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
