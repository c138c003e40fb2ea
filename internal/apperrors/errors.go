package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the stable categories the frontend
// keys its messages off. Every kind maps to exactly one HTTP status and one
// machine-readable code string.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindDuplicateRegistration
	KindPaymentNotRequired
	KindInvalidSignature
	KindValidation
	KindNoSubmissions
	KindStorageUnavailable
	KindExternalService
	KindNotConfigured
)

// Error is a kinded error. Callers test the kind with KindOf/Is; the wrapped
// cause stays reachable through errors.Unwrap.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two apperrors by kind, so errors.Is(err, apperrors.New(kind, ""))
// and the sentinel-style helpers below work as expected.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a kinded error with a static message
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates a kinded error with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a kinded error around a cause
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain, KindUnknown if none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Code returns the stable machine-readable code for an error kind
func (k Kind) Code() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindDuplicateRegistration:
		return "DUPLICATE_REGISTRATION"
	case KindPaymentNotRequired:
		return "PAYMENT_NOT_REQUIRED"
	case KindInvalidSignature:
		return "INVALID_SIGNATURE"
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNoSubmissions:
		return "NO_SUBMISSIONS"
	case KindStorageUnavailable:
		return "STORAGE_UNAVAILABLE"
	case KindExternalService:
		return "EXTERNAL_SERVICE_ERROR"
	case KindNotConfigured:
		return "SERVICE_NOT_CONFIGURED"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus returns the HTTP status an error kind renders as
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateRegistration:
		return http.StatusConflict
	case KindPaymentNotRequired, KindInvalidSignature, KindValidation, KindNoSubmissions:
		return http.StatusBadRequest
	case KindStorageUnavailable, KindNotConfigured:
		return http.StatusServiceUnavailable
	case KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
