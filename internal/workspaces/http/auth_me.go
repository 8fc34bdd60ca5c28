package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the account behind the presented access token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	zunosdk.User			"id, email, full_name, is_verified"
//	@Failure		401	{object}	zunosdk.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	zunosdk.ErrorResponse	"account deactivated"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.CurrentUser(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUser(user))
}
