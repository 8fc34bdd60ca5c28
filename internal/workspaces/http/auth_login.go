package http

import (
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/jwtx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate a verified account with email and password, returning a JWT access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		zunosdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	zunosdk.LoginResponse	"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	zunosdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	zunosdk.ErrorResponse	"incorrect email or password"
//	@Failure		403		{object}	zunosdk.ErrorResponse	"email not verified"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req zunosdk.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeInvalidRequest(w, "email and password are required")
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
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
