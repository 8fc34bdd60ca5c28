package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/jwtx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type RefreshTokenHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh Token Endpoint
//	@Description	Issue a fresh access token for the authenticated user. The account state is
//	@Description	re-checked, so a deactivated account cannot renew its session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	zunosdk.LoginResponse	"access_token, token_type, expires_in, user"
//	@Failure		401	{object}	zunosdk.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	zunosdk.ErrorResponse	"account deactivated"
//	@Security		BearerAuth
//	@Router			/v1/auth/refresh-token [post].
func (h *RefreshTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, token, err := h.AuthService.RefreshToken(r.Context(), httpx.UserIDFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, zunosdk.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(jwtx.DefaultAccessTokenTTL.Seconds()),
		User:        toUser(user),
	})
}
