package api

import (
	"errors"
	"fmt"
	"time"
)

// DefaultRetryAfter is the hint attached to a 429 response that carries
// no usable Retry-After value. Deliberately conservative: one second is
// one full refill interval at the sustained rate.
const DefaultRetryAfter = time.Second

// ErrorKind identifies one variant of the closed error taxonomy. Every
// failed call maps to exactly one kind; the set is stable and callers may
// switch on it.
type ErrorKind string

const (
	// KindTransport: the request never produced an HTTP response
	// (DNS, TLS, connection reset, timeout). The cause is wrapped.
	KindTransport ErrorKind = "transport"

	// KindRateLimited: upstream rejected the call with 429. RetryAfter
	// carries the server's hint, or DefaultRetryAfter if none was given.
	// The client never retries on its own.
	KindRateLimited ErrorKind = "rate_limited"

	// KindUnauthorized: 401 or 403, regardless of body content.
	KindUnauthorized ErrorKind = "unauthorized"

	// KindNotFound: 404.
	KindNotFound ErrorKind = "not_found"

	// KindMalformed: upstream responded 2xx but the body did not decode
	// into the expected shape. Diagnostic names the offending field or
	// byte offset.
	KindMalformed ErrorKind = "malformed_response"

	// KindAPI: any other non-2xx status, with a best-effort message
	// extracted from the body.
	KindAPI ErrorKind = "api"
)

// Error is the normalized error returned by every failed call. It is
// constructed once, never mutated, and never contains the API token.
type Error struct {
	Kind       ErrorKind
	Status     int           // HTTP status, 0 for transport failures
	Message    string        // human-readable summary
	RetryAfter time.Duration // KindRateLimited only
	Diagnostic string        // KindMalformed only

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("finnhub: transport failure: %v", e.cause)
	case KindRateLimited:
		return fmt.Sprintf("finnhub: rate limited, retry after %s", e.RetryAfter)
	case KindUnauthorized:
		return "finnhub: unauthorized: invalid or missing API token"
	case KindNotFound:
		return "finnhub: not found"
	case KindMalformed:
		return fmt.Sprintf("finnhub: malformed response: %s", e.Diagnostic)
	default:
		return fmt.Sprintf("finnhub api error %d: %s", e.Status, e.Message)
	}
}

// Unwrap exposes the underlying cause (transport and decode failures).
func (e *Error) Unwrap() error {
	return e.cause
}

// AsError unwraps err into the normalized *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsRateLimited reports whether err is a normalized 429.
func IsRateLimited(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindRateLimited
}

// IsUnauthorized reports whether err is a normalized 401/403.
func IsUnauthorized(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a normalized 404.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindNotFound
}

func transportError(cause error) *Error {
	return &Error{Kind: KindTransport, Message: "request failed", cause: cause}
}
