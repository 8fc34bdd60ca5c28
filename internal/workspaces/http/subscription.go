package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type SubscriptionHandler struct {
	SubscriptionService *service.SubscriptionService
}

// ServeHTTP godoc
//
//	@Summary		Subscription Endpoint
//	@Description	Report the authenticated user's plan and the seat and workspace limits it grants.
//	@Description	Users without a subscription are lazily placed on the free plan.
//	@Tags			Subscription
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	zunosdk.SubscriptionResponse	"plan, status, seat_limit, workspace_limit"
//	@Failure		401	{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Router			/v1/subscription [get].
func (h *SubscriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	sub, limits, err := h.SubscriptionService.CurrentPlanDetails(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.SubscriptionResponse{
		Plan:           sub.Plan,
		Status:         string(sub.Status),
		SeatLimit:      limits.SeatLimit,
		WorkspaceLimit: limits.WorkspaceLimit,
	})
}
