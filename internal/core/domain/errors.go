package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrRegistrationRejected = errors.New("registration rejected")
	ErrNoSession            = errors.New("no active session")
	ErrTaskBusy             = errors.New("task mutation already in flight")
)

// FailureKind classifies every error the client can surface.
type FailureKind string

const (
	FailureValidation   FailureKind = "validation"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureNetwork      FailureKind = "network"
	FailureServer       FailureKind = "server"
)

// ValidationError is raised client-side, before any request goes out.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// RequestError wraps a request that could not be sent (network) or was
// rejected by the server with a non-2xx status other than 401.
type RequestError struct {
	Kind   FailureKind
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s failure (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// KindOf maps an error onto the failure taxonomy.
func KindOf(err error) FailureKind {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return FailureValidation
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNoSession) {
		return FailureUnauthorized
	}
	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return requestErr.Kind
	}
	return FailureServer
}
