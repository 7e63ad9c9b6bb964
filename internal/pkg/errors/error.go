package xerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common reusable application errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("conflict: resource already exists")
	ErrInternal       = errors.New("internal server error")
	ErrRateLimited    = errors.New("too many requests")
	ErrSessionExpired = errors.New("session expired")
	ErrInvalidToken   = errors.New("invalid token")
)

// Kind classifies an Error for the HTTP boundary.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuth          Kind = "auth"
	KindNotFound      Kind = "not_found"
	KindUpstream      Kind = "upstream"
	KindRouteNotFound Kind = "route_not_found"
	KindUnhandled     Kind = "unhandled"
)

// Error codes surfaced to clients.
const (
	CodeInvalidRequest     = "InvalidRequest"
	CodeMissingCredentials = "MissingCredentials"
	CodeMissingFields      = "MissingFields"
	CodeInvalidEmailFormat = "InvalidEmailFormat"
	CodeFieldTooLong       = "FieldTooLong"
	CodeInvalidId          = "InvalidId"
	CodeInvalidImage       = "InvalidImage"
	CodePasswordMismatch   = "PasswordMismatch"
	CodeWeakPassword       = "WeakPassword"
	CodeEmailInUse         = "EmailInUse"
	CodeEmptyUpdate        = "EmptyUpdate"
	CodeUnauthorized       = "Unauthorized"
	CodeInvalidToken       = "InvalidToken"
	CodeSessionExpired     = "SessionExpired"
	CodeInvalidCredentials = "InvalidCredentials"
	CodeWrongPassword      = "WrongCurrentPassword"
	CodeAccountLocked      = "AccountLocked"
	CodeRateLimited        = "RateLimited"
	CodeOriginNotAllowed   = "OriginNotAllowed"
	CodeNotFound           = "NotFound"
	CodeUpstream           = "UpstreamError"
	CodeRouteNotFound      = "RouteNotFound"
	CodeUnhandled          = "UnhandledError"
)

// Error is the typed failure returned by services. Message is safe to show to
// clients; Err carries the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Code    string
	Status  int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of e carrying extra client-visible data.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Validation builds a 400 error.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Status: http.StatusBadRequest, Message: message}
}

// Auth builds an authentication/authorization error with the given status
// (401 or 429).
func Auth(status int, code, message string) *Error {
	return &Error{Kind: KindAuth, Code: code, Status: status, Message: message}
}

// NotFound builds a 404 error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

// Upstream wraps a data-store or CDN failure. The client only ever sees the
// generic message.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Code: CodeUpstream, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// RouteNotFound is returned for unmatched paths.
func RouteNotFound() *Error {
	return &Error{Kind: KindRouteNotFound, Code: CodeRouteNotFound, Status: http.StatusNotFound, Message: "Ruta no encontrada"}
}

// Unhandled is returned by the panic fallback.
func Unhandled() *Error {
	return &Error{Kind: KindUnhandled, Code: CodeUnhandled, Status: http.StatusInternalServerError, Message: "Error interno del servidor"}
}

// AsError extracts a typed *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
