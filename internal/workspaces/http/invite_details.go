package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type InviteDetailsHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Invitation Details Endpoint
//	@Description	Resolve an invitation token for the public landing page. Reveals the
//	@Description	workspace name, role, and whether the invited email already has an account.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string							true	"Invitation token"
//	@Success		200		{object}	zunosdk.InviteDetailsResponse	"invite, workspace_name, user_exists"
//	@Failure		404		{object}	zunosdk.ErrorResponse			"invitation not found or already processed"
//	@Failure		410		{object}	zunosdk.ErrorResponse			"invitation has expired"
//	@Router			/v1/invites/{token} [get].
func (h *InviteDetailsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		writeInvalidRequest(w, "token is required")
		return
	}

	details, err := h.InviteService.InviteDetails(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.InviteDetailsResponse{
		Invite:        toInvite(details.Invite),
		WorkspaceName: details.Workspace.Name,
		UserExists:    details.UserExists,
	})
}
