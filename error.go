package webask

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID      = "invalid"
	EUNCONFIGURED = "unconfigured"
	ENOTFOUND     = "not_found"
	EFORBIDDEN    = "forbidden"
	ERATELIMIT    = "rate_limit"
	EBADREQUEST   = "bad_request"
	EUNAVAILABLE  = "unavailable"
	EAPI          = "api"
	EBLOCKED      = "blocked"
	EEMPTY        = "empty"
	EMALFORMED    = "malformed"
	EINTERNAL     = "internal"
	ENOCONTENT    = "no_content"

	// Fetch-side codes.
	ETIMEOUT     = "timeout"
	ENETWORK     = "network"
	ESTATUS      = "status"
	EUNSUPPORTED = "unsupported"
)

// Error represents an application-specific error. Message is meant to be
// shown to the user as is.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. The CLI prints Message instead.
func (e *Error) Error() string {
	return fmt.Sprintf("webask error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
