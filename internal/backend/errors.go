package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors for the closed outbound error taxonomy. Callers check
// these with errors.Is(); the structured types below carry the details.
var (
	// ErrUnreachable indicates a transport-level failure (DNS, connection
	// refused, timeout) talking to a backend service.
	ErrUnreachable = errors.New("backend unreachable")

	// ErrUpstream indicates a backend answered with a non-success status.
	ErrUpstream = errors.New("upstream error")

	// ErrDecode indicates a backend answered but the payload shape did not
	// match the declared record.
	ErrDecode = errors.New("decode error")
)

// TransportError represents a failure to reach a backend service at all.
type TransportError struct {
	Service string
	Cause   error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s service unreachable: %v", e.Service, e.Cause)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *TransportError) Is(target error) bool {
	if target == ErrUnreachable {
		return true
	}
	_, ok := target.(*TransportError)
	return ok || errors.Is(e.Cause, target)
}

// NewTransportError creates a new TransportError.
func NewTransportError(service string, cause error) *TransportError {
	return &TransportError{Service: service, Cause: cause}
}

// UpstreamError represents a non-success status from a backend service.
// It keeps the upstream status and body so clients can tell which
// upstream failed and why.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service returned status %d: %s", e.Service, e.Status, e.Body)
}

// Is checks if the error matches the target.
func (e *UpstreamError) Is(target error) bool {
	if target == ErrUpstream {
		return true
	}
	_, ok := target.(*UpstreamError)
	return ok
}

// NewUpstreamError creates a new UpstreamError.
func NewUpstreamError(service string, status int, body []byte) *UpstreamError {
	return &UpstreamError{Service: service, Status: status, Body: string(body)}
}

// DecodeError represents a payload that could not be mapped into its
// typed record. Distinct from UpstreamError so clients can tell "service
// answered but shape was wrong" from "service failed".
type DecodeError struct {
	Service string
	Cause   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s service returned malformed payload: %v", e.Service, e.Cause)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *DecodeError) Is(target error) bool {
	if target == ErrDecode {
		return true
	}
	_, ok := target.(*DecodeError)
	return ok || errors.Is(e.Cause, target)
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(service string, cause error) *DecodeError {
	return &DecodeError{Service: service, Cause: cause}
}
