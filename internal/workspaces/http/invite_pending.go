package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type PendingInvitesHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Pending Invitations Endpoint
//	@Description	List open invitations addressed to the authenticated user's email across all workspaces.
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	zunosdk.PendingInvitesResponse	"invites"
//	@Failure		401	{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/pending [get].
func (h *PendingInvitesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := httpx.UserEmailFromCtx(r.Context())

	invites, err := h.InviteService.PendingInvitesFor(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.PendingInvitesResponse{
		Invites: toInvites(invites),
	})
}
