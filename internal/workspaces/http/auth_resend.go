package http

import (
	"errors"
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

type ResendVerificationHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Resend Verification Endpoint
//	@Description	Mint a fresh email verification token for an unverified account and send the
//	@Description	link again. The response is the same whether or not the address has an
//	@Description	unverified account, so it cannot be used to enumerate registered emails.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		zunosdk.ResendVerificationRequest	true	"email"
//	@Success		200		{object}	zunosdk.ResendVerificationResponse	"message"
//	@Failure		400		{object}	zunosdk.ErrorResponse				"error, error_description"
//	@Router			/v1/auth/resend-verification [post].
func (h *ResendVerificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req zunosdk.ResendVerificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		writeInvalidRequest(w, "email is required")
		return
	}

	_, err := h.AuthService.ResendVerification(r.Context(), req.Email)
	switch {
	case err == nil,
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrEmailAlreadyVerified):
		// Same answer for all three so the endpoint does not leak which
		// addresses hold accounts.
	default:
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, zunosdk.ResendVerificationResponse{
		Message: "If that address has an unverified account, a new verification email is on its way.",
	})
}
