package result

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureKind discriminates the closed set of failure variants.
type FailureKind string

const (
	// FailureKind_SERVER indicates the remote side answered with an error.
	FailureKind_SERVER FailureKind = "SERVER"
	// FailureKind_NETWORK indicates the remote side could not be reached.
	FailureKind_NETWORK FailureKind = "NETWORK"
	// FailureKind_CACHE indicates the local store could not serve the request.
	FailureKind_CACHE FailureKind = "CACHE"
	// FailureKind_NOT_FOUND indicates the requested value does not exist.
	FailureKind_NOT_FOUND FailureKind = "NOT_FOUND"
	// FailureKind_VALIDATION indicates the input violated a domain rule.
	FailureKind_VALIDATION FailureKind = "VALIDATION"
	// FailureKind_SERIALIZATION indicates a value could not be encoded or decoded.
	FailureKind_SERIALIZATION FailureKind = "SERIALIZATION"
)

// Failure is the error arm of a Result. Every variant carries a
// human-readable message and a kind for exhaustive handling.
type Failure struct {
	kind    FailureKind
	message string
	cause   error
}

// Kind returns the failure discriminator.
func (f Failure) Kind() FailureKind {
	return f.kind
}

// Message returns the human-readable description of the failure.
func (f Failure) Message() string {
	return f.message
}

// Error implements the error interface.
func (f Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.kind, f.message, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.kind, f.message)
}

// Unwrap exposes the boundary error the failure was translated from.
func (f Failure) Unwrap() error {
	return f.cause
}

// IsZero reports whether the failure is the zero value (no failure).
func (f Failure) IsZero() bool {
	return f.kind == ""
}

// WithCause returns a copy of the failure carrying the given boundary error.
func (f Failure) WithCause(err error) Failure {
	f.cause = err
	return f
}

// NewServerFailure creates a SERVER failure with the given message.
func NewServerFailure(message string) Failure {
	return Failure{kind: FailureKind_SERVER, message: message}
}

// NewNetworkFailure creates a NETWORK failure with the given message.
func NewNetworkFailure(message string) Failure {
	return Failure{kind: FailureKind_NETWORK, message: message}
}

// NewCacheFailure creates a CACHE failure with the given message.
func NewCacheFailure(message string) Failure {
	return Failure{kind: FailureKind_CACHE, message: message}
}

// NewNotFoundFailure creates a NOT_FOUND failure with the given message.
func NewNotFoundFailure(message string) Failure {
	return Failure{kind: FailureKind_NOT_FOUND, message: message}
}

// NewValidationFailure creates a VALIDATION failure with the given message.
func NewValidationFailure(message string) Failure {
	return Failure{kind: FailureKind_VALIDATION, message: message}
}

// NewSerializationFailure creates a SERIALIZATION failure with the given message.
func NewSerializationFailure(message string) Failure {
	return Failure{kind: FailureKind_SERIALIZATION, message: message}
}

// AsFailure extracts a Failure from an error chain.
func AsFailure(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	return Failure{}, false
}

// Translate converts a raw boundary error into a Failure. It is the
// single place where uncontrolled errors become values: timeouts and
// connection errors map to NETWORK, everything else to SERVER. Errors
// that already carry a Failure pass through unchanged.
func Translate(err error) Failure {
	if f, ok := AsFailure(err); ok {
		return f
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewNetworkFailure("request timed out").WithCause(err)
	}
	if errors.Is(err, context.Canceled) {
		return NewNetworkFailure("request canceled").WithCause(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return NewNetworkFailure("request timed out").WithCause(err)
		}
		return NewNetworkFailure("connection failed").WithCause(err)
	}

	return NewServerFailure(err.Error()).WithCause(err)
}
