package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type SentInvitesHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Sent Invitations Endpoint
//	@Description	List every invitation a workspace has issued, any status, newest first.
//	@Description	Requires the caller to be an active owner or admin.
//	@Tags			Invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Workspace ID"
//	@Success		200	{object}	zunosdk.SentInvitesResponse	"workspace_id, invites"
//	@Failure		403	{object}	zunosdk.ErrorResponse		"forbidden"
//	@Router			/v1/workspaces/{id}/invites [get].
func (h *SentInvitesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("id")
	userID := httpx.UserIDFromCtx(r.Context())

	invites, err := h.InviteService.SentInvites(r.Context(), workspaceID, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.SentInvitesResponse{
		WorkspaceID: workspaceID,
		Invites:     toInvites(invites),
	})
}
