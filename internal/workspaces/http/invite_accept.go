package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type InviteAcceptHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Redeem an invitation token and join the workspace. Existing accounts join
//	@Description	directly; new accounts must supply full_name and password and are created
//	@Description	pre-verified with a free subscription and a personal workspace.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		zunosdk.AcceptInviteRequest		true	"token, optional full_name + password for new accounts"
//	@Success		200		{object}	zunosdk.AcceptInviteResponse	"access_token, user, workspace, role, is_new_user"
//	@Failure		400		{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	zunosdk.ErrorResponse			"seat limit exceeded"
//	@Failure		404		{object}	zunosdk.ErrorResponse			"invitation not found or already processed"
//	@Failure		410		{object}	zunosdk.ErrorResponse			"invitation has expired"
//	@Router			/v1/invites/accept [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req zunosdk.AcceptInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeInvalidRequest(w, "token is required")
		return
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		writeInvalidRequest(w, "Password must be at least 8 characters")
		return
	}

	result, err := h.InviteService.AcceptInvite(r.Context(), req.Token, req.FullName, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.AcceptInviteResponse{
		AccessToken:         result.AccessToken,
		TokenType:           "Bearer",
		User:                toUser(result.User),
		Workspace:           toWorkspace(result.Workspace),
		Role:                string(result.Role),
		IsNewUser:           result.IsNewUser,
		PersonalWorkspaceID: result.PersonalWorkspaceID,
	})
}
