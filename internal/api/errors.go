package api

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure so callers can branch on it without
// string-matching messages.
type Kind int

const (
	// KindNetwork covers transport failures: the request never produced
	// an HTTP response (connection refused, timeout, DNS).
	KindNetwork Kind = iota
	// KindUnauthorized is a 401. Stored credentials have already been
	// cleared by the time the caller sees this; the session is over.
	KindUnauthorized
	// KindForbidden is a 403: authenticated but not allowed. Credentials
	// are kept.
	KindForbidden
	// KindValidation is a 400: the payload was rejected and the message
	// is meant to be shown verbatim so the user can correct the input.
	KindValidation
	// KindServer is any other non-2xx HTTP status.
	KindServer
	// KindApplication is a 2xx response whose envelope says success:false.
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindApplication:
		return "application"
	}
	return "unknown"
}

// Error is the single error type surfaced by the client. Message is
// safe to show to the user as-is.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NeedsLogin reports whether the failure means the session expired and
// the user has to authenticate again.
func NeedsLogin(err error) bool { return kindOf(err) == KindUnauthorized }

// IsValidation reports whether the failure is a correctable input error.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// IsForbidden reports whether the caller is authenticated but denied.
func IsForbidden(err error) bool { return kindOf(err) == KindForbidden }

func kindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return Kind(-1)
}

// UserMessage extracts the display message from a client error, falling
// back to the raw error text for anything unexpected.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
