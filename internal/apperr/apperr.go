package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the transport layer can map it to
// a status code in one place.
type Kind int

const (
	// KindUnexpected covers datastore and other infrastructure failures.
	KindUnexpected Kind = iota
	// KindValidation covers malformed or missing client input.
	KindValidation
	// KindAuth covers missing, invalid or expired credentials and tokens.
	KindAuth
	// KindForbidden covers authenticated callers with insufficient role.
	KindForbidden
	// KindNotFound covers absent resources.
	KindNotFound
	// KindConflict covers uniqueness violations.
	KindConflict
)

// Error is the single error type returned by core services. Message is safe
// to show to clients; Err carries the underlying cause for logging only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a client-fixable input error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Auth builds a credential/token error. Messages are kept deliberately
// uninformative to avoid account enumeration.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Forbidden builds an insufficient-role error.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound builds an absent-resource error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict builds a uniqueness-violation error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Unexpected wraps an infrastructure failure behind an opaque message.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: "internal error", Err: err}
}

// KindOf extracts the kind from err, defaulting to KindUnexpected.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnexpected
}
