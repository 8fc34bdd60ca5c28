package http

import (
	"net/http"
	"net/mail"

	"github.com/zunohq/zuno/internal/workspaces/domain"
	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type InviteMemberHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Invite Member Endpoint
//	@Description	Invite an email address into a workspace as admin or member. Requires the
//	@Description	caller to be an active owner or admin. Seat accounting counts active members
//	@Description	plus pending invitations against the workspace owner's plan.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Workspace ID"
//	@Param			request	body		zunosdk.InviteMemberRequest		true	"email, role"
//	@Success		200		{object}	zunosdk.InviteMemberResponse	"outcome, invite_id, email, role, expires_at"
//	@Failure		400		{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	zunosdk.ErrorResponse			"forbidden or seat limit exceeded"
//	@Failure		404		{object}	zunosdk.ErrorResponse			"workspace not found or inactive"
//	@Router			/v1/workspaces/{id}/invites [post].
func (h *InviteMemberHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("id")
	inviterID := httpx.UserIDFromCtx(r.Context())

	var req zunosdk.InviteMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeInvalidRequest(w, "A valid email address is required")
		return
	}

	result, err := h.InviteService.InviteTeamMember(r.Context(), workspaceID, inviterID, req.Email, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := zunosdk.InviteMemberResponse{
		Outcome: string(result.Outcome),
		Email:   req.Email,
		Role:    req.Role,
	}
	if result.Outcome != service.MemberReactivated {
		resp.InviteID = result.Invite.ID
		expiresAt := result.Invite.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
