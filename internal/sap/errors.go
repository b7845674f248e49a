package sap

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind classifies a gateway failure. Callers branch on the kind instead of
// receiving fabricated success data; there is no mock fallback in this path.
type Kind int

const (
	// KindUnavailable covers connection failures and 5xx upstream responses.
	KindUnavailable Kind = iota
	// KindTimeout is a deadline hit on the transport.
	KindTimeout
	// KindParse means the upstream responded but the payload did not match
	// the expected shape. Schema drift surfaces here, never as zero values.
	KindParse
	// KindNotFound means SAP answered with no record for the request.
	KindNotFound
	// KindDenied covers upstream 401/403 on the service credentials.
	KindDenied
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindTimeout:
		return "timeout"
	case KindParse:
		return "parse"
	case KindNotFound:
		return "not_found"
	case KindDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Error is the typed error returned by every gateway transport operation.
type Error struct {
	Kind     Kind
	Function string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sap: %s: %s: %v", e.Function, e.Kind, e.Err)
	}
	return fmt.Sprintf("sap: %s: %s", e.Function, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain. Unknown errors are
// reported as unavailable, the most conservative classification.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnavailable
}

// IsNotFound reports whether err means the upstream record is absent
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

func transportError(function string, err error) *Error {
	kind := KindUnavailable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Function: function, Err: err}
}

func statusError(function string, statusCode int) *Error {
	kind := KindUnavailable
	switch statusCode {
	case 401, 403:
		kind = KindDenied
	case 404:
		kind = KindNotFound
	}
	return &Error{Kind: kind, Function: function, Err: fmt.Errorf("upstream status %d", statusCode)}
}

func parseError(function string, err error) *Error {
	return &Error{Kind: KindParse, Function: function, Err: err}
}
