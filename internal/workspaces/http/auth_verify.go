package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type VerifyEmailHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Verify Email Endpoint
//	@Description	Redeem an email verification token. On success the account is marked verified
//	@Description	and provisioned with a free subscription and a personal workspace.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		zunosdk.VerifyEmailRequest	true	"token"
//	@Success		200		{object}	zunosdk.VerifyEmailResponse	"user_id, workspace_id, message"
//	@Failure		400		{object}	zunosdk.ErrorResponse		"invalid or expired verification token"
//	@Router			/v1/auth/verify-email [post].
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req zunosdk.VerifyEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeInvalidRequest(w, "token is required")
		return
	}

	user, ws, err := h.AuthService.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, zunosdk.VerifyEmailResponse{
		UserID:      user.ID,
		WorkspaceID: ws.ID,
		Message:     "Email verified successfully.",
	})
}
