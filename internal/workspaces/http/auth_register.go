package http

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

// minPasswordLength matches the signup form's client-side rule.
const minPasswordLength = 8

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account. The account starts unverified; a verification
//	@Description	link is emailed and must be followed before logging in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		zunosdk.RegisterRequest		true	"email, full_name, password"
//	@Success		201		{object}	zunosdk.RegisterResponse	"user_id, email, message"
//	@Failure		400		{object}	zunosdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	zunosdk.ErrorResponse		"email already registered"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req zunosdk.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeInvalidRequest(w, "A valid email address is required")
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		writeInvalidRequest(w, "full_name is required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeInvalidRequest(w, "Password must be at least 8 characters")
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, zunosdk.RegisterResponse{
		UserID:  user.ID,
		Email:   user.Email,
		Message: "Registration successful. Please check your email to verify your account.",
	})
}
