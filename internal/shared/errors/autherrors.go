package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// AuthError represents authentication-specific errors.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a mistyped password.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError never reveals whether the username or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		},
	}
}

// NewSessionExpiredError creates an error for expired or deleted sessions
func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionExpired,
			Message: "Session has expired",
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
	}
}

// NewTokenInvalidError creates an error for session cookies that fail verification
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid session token",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: true,
	}
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
