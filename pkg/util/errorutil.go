package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the application.
const (
	CodeSessionExpired = "SESSION_EXPIRED"
	CodeValidation     = "VALIDATION_FAILED"
	CodeNotFound       = "NOT_FOUND"
	CodeForbidden      = "FORBIDDEN"
	CodeBackend        = "BACKEND_ERROR"
	CodeTransport      = "TRANSPORT_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
)

// SessionExpiredMessage is the fixed message shown when the backend rejects
// the bearer token.
const SessionExpiredMessage = "your session has expired, please sign in again"

// GenericFailureMessage is the last-resort user-facing error text.
const GenericFailureMessage = "an unexpected error occurred, please try again"

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

// NewSessionExpired marks the fatal 401 path: the session must be destroyed
// and the user sent back to the login screen.
func NewSessionExpired() error {
	return NewDomainError(CodeSessionExpired, SessionExpiredMessage, http.StatusUnauthorized, nil)
}

// NewBackendError wraps a non-401 failure reported by the backend, keeping
// its message and status for display.
func NewBackendError(message string, status int) error {
	if message == "" {
		message = GenericFailureMessage
	}
	return NewDomainError(CodeBackend, message, status, nil)
}

// NewTransportError wraps a network-level failure reaching the backend.
func NewTransportError(err error) error {
	return &DomainError{
		Code:       CodeTransport,
		Message:    GenericFailureMessage,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    GenericFailureMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    GenericFailureMessage,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsSessionExpired reports whether err is the fatal 401 error.
func IsSessionExpired(err error) bool {
	de := ToDomainError(err)
	return de != nil && de.Code == CodeSessionExpired
}
