package http

import (
	"errors"
	"net/http"

	"github.com/zunohq/zuno/internal/workspaces/service"
	"github.com/zunohq/zuno/pkg/httpx"
	"github.com/zunohq/zuno/pkg/slogx"
	"github.com/zunohq/zuno/pkg/zunosdk"
)

// writeServiceError maps a service-layer error onto the wire. Every handler
// funnels its error paths through here so the status/code mapping lives in
// one place.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		code        string
		status      int
		description = err.Error()
	)

	switch {
	case errors.Is(err, service.ErrEmailTaken):
		code, status = zunosdk.ErrorCodeEmailTaken, http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		code, status = zunosdk.ErrorCodeInvalidCredentials, http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotVerified):
		code, status = zunosdk.ErrorCodeEmailNotVerified, http.StatusForbidden
	case errors.Is(err, service.ErrInvalidVerificationToken),
		errors.Is(err, service.ErrEmailAlreadyVerified):
		code, status = zunosdk.ErrorCodeInvalidRequest, http.StatusBadRequest

	case errors.Is(err, service.ErrUserDeactivated):
		code, status = zunosdk.ErrorCodeForbidden, http.StatusForbidden

	case errors.Is(err, service.ErrWorkspaceNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInviteNotFound):
		code, status = zunosdk.ErrorCodeNotFound, http.StatusNotFound

	case errors.Is(err, service.ErrInviteExpired):
		code, status = zunosdk.ErrorCodeInviteExpired, http.StatusGone

	case errors.Is(err, service.ErrNotAMember),
		errors.Is(err, service.ErrInsufficientRole):
		code, status = zunosdk.ErrorCodeForbidden, http.StatusForbidden

	case errors.Is(err, service.ErrAlreadyMember):
		code, status = zunosdk.ErrorCodeAlreadyMember, http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrNewUserDetailsRequired):
		code, status = zunosdk.ErrorCodeInvalidRequest, http.StatusBadRequest

	case errors.Is(err, service.ErrSeatLimitExceeded):
		code, status = zunosdk.ErrorCodeSeatLimitExceeded, http.StatusForbidden
	case errors.Is(err, service.ErrWorkspaceLimitExceeded):
		code, status = zunosdk.ErrorCodeWorkspaceLimitExceeded, http.StatusForbidden

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		code, status = zunosdk.ErrorCodeServerError, http.StatusInternalServerError
		description = "An internal error occurred"
	}

	httpx.WriteJSON(w, status, zunosdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

// writeInvalidRequest rejects a malformed request body or missing field.
func writeInvalidRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, zunosdk.ErrorResponse{
		Error:            zunosdk.ErrorCodeInvalidRequest,
		ErrorDescription: description,
	})
}
