package bcapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the OData error object Business Central returns inside the
// error envelope.
type APIError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorResponse is the error envelope returned by the API, plus the HTTP
// status it arrived with.
type ErrorResponse struct {
	Err        APIError `json:"error"`
	StatusCode int      `json:"-"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	if e.Err.Code == "" && e.Err.Message == "" {
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("API request failed with status %d: %s: %s", e.StatusCode, e.Err.Code, e.Err.Message)
}

// Well-known upstream error codes.
const (
	ErrorCodeUnauthorized       = "Unauthorized"
	ErrorCodeNotFound           = "BadRequest_NotFound"
	ErrorCodeResourceNotFound   = "BadRequest_ResourceNotFound"
	ErrorCodeInvalidToken       = "BadRequest_InvalidToken"
	ErrorCodeEntityChanged      = "Request_EntityChanged"
	ErrorCodeInternalError      = "Internal_ServerError"
	ErrorCodeCompanyNotFound    = "Internal_CompanyNotFound"
	ErrorCodeInvalidCredentials = "Authentication_InvalidCredentials"
)

// Static errors raised before any network call. Each one names the setup
// step that is missing so the failure is immediately actionable.
var (
	ErrNotAuthenticated     = errors.New("not authenticated: configure credentials or an access token first")
	ErrEnvironmentRequired  = errors.New("environment is not set: call SetEnvironment first")
	ErrCompanyRequired      = errors.New("company context is not set: call SetCompany first")
	ErrExtensionAPIRequired = errors.New("extension API publisher, group, and version must all be set")
	ErrTenantIDRequired     = errors.New("tenant ID is required")
	ErrConfigRequired       = errors.New("config is required")
	ErrEndpointRequired     = errors.New("API endpoint is required")
	ErrCredentialsRequired  = errors.New("client ID and client secret (or an access token) are required")
	ErrCompanyNotFound      = errors.New("company not found in environment")
	ErrUnknownMode          = errors.New("unknown addressing mode")
	ErrSkipTLSOnlyInDev     = errors.New("skipTLS is only allowed in development environments")
)

// IsNotFound checks if the error is an upstream not-found error.
func IsNotFound(err error) bool {
	errResp := &ErrorResponse{}
	if errors.As(err, &errResp) {
		if errResp.StatusCode == http.StatusNotFound {
			return true
		}

		return strings.HasSuffix(errResp.Err.Code, "_NotFound")
	}

	return false
}

// IsUnauthorized checks if the error is an upstream authorization failure,
// which is how an expired or invalid token surfaces.
func IsUnauthorized(err error) bool {
	errResp := &ErrorResponse{}
	if errors.As(err, &errResp) {
		if errResp.StatusCode == http.StatusUnauthorized {
			return true
		}

		return errResp.Err.Code == ErrorCodeUnauthorized || errResp.Err.Code == ErrorCodeInvalidToken
	}

	return false
}

// IsEntityChanged checks if the error is the optimistic-concurrency conflict
// the service raises when an If-Match precondition fails.
func IsEntityChanged(err error) bool {
	errResp := &ErrorResponse{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == http.StatusConflict || errResp.Err.Code == ErrorCodeEntityChanged
	}

	return false
}

// ParseErrorResponse parses an error envelope from a response body. The
// envelope is optional: some failures carry no body, in which case only the
// status code is preserved.
func ParseErrorResponse(data []byte, statusCode int) *ErrorResponse {
	errResp := &ErrorResponse{StatusCode: statusCode}

	if len(data) > 0 {
		// Best effort: keep the raw status even if the body is not the
		// documented envelope.
		_ = json.Unmarshal(data, errResp)
	}

	return errResp
}
