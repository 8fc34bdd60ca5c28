package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type InviteDeclineHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Decline Invitation Endpoint
//	@Description	Turn down a pending invitation. Both the token and the invited email are
//	@Description	required so a leaked token alone cannot decline on someone's behalf.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		zunosdk.DeclineInviteRequest	true	"token, email"
//	@Success		200		{object}	map[string]string				"message"
//	@Failure		400		{object}	zunosdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	zunosdk.ErrorResponse			"invitation not found or already processed"
//	@Router			/v1/invites/decline [post].
func (h *InviteDeclineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req zunosdk.DeclineInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" || req.Email == "" {
		writeInvalidRequest(w, "token and email are required")
		return
	}

	if err := h.InviteService.DeclineInvite(r.Context(), req.Token, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Invitation declined.",
	})
}
