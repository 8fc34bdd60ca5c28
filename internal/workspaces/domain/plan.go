package domain

// PlanFree is the tier assigned to lazily created subscriptions and the
// fallback for unknown plan identifiers.
const PlanFree = "free"

// PlanLimits are the capacity limits a plan grants.
type PlanLimits struct {
	// SeatLimit bounds active members plus pending invites per workspace.
	SeatLimit int
	// WorkspaceLimit bounds workspaces owned by one user.
	WorkspaceLimit int
}

var planLimits = map[string]PlanLimits{
	PlanFree:   {SeatLimit: 5, WorkspaceLimit: 1},
	"pro":      {SeatLimit: 20, WorkspaceLimit: 5},
	"business": {SeatLimit: 100, WorkspaceLimit: 20},
}

// LimitsFor returns the limits for a plan identifier. Unknown plans fall
// back to the free tier, so this never fails.
func LimitsFor(plan string) PlanLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}
