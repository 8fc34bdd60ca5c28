package zunosdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error codes the service returns in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest         = "invalid_request"
	ErrorCodeInvalidCredentials     = "invalid_credentials"
	ErrorCodeEmailNotVerified       = "email_not_verified"
	ErrorCodeEmailTaken             = "email_taken"
	ErrorCodeNotFound               = "not_found"
	ErrorCodeForbidden              = "forbidden"
	ErrorCodeAlreadyMember          = "already_member"
	ErrorCodeInviteExpired          = "invite_expired"
	ErrorCodeSeatLimitExceeded      = "seat_limit_exceeded"
	ErrorCodeWorkspaceLimitExceeded = "workspace_limit_exceeded"
	ErrorCodeRateLimited            = "rate_limited"
	ErrorCodeServerError            = "server_error"
)

// APIError is a decoded error response from the service. It implements the
// error interface so SDK callers can inspect the code and status.
type APIError struct {
	// StatusCode is the HTTP status the service responded with
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseAPIError decodes an error body from a non-2xx response. Bodies that
// are not the standard envelope still produce a usable APIError.
func parseAPIError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError, Description: "failed to read error response"}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
