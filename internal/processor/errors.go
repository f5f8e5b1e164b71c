package processor

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is the base error for completion replies that fail
// JSON extraction, decoding, or shape validation. It is recoverable: the
// caller substitutes fallback data instead of failing the request.
var ErrMalformedResponse = errors.New("malformed completion response")

// MalformedResponseError carries which domain rejected the reply and why.
type MalformedResponseError struct {
	Domain string
	Reason string
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", ErrMalformedResponse, e.Domain, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", ErrMalformedResponse, e.Domain, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

func newMalformedError(domain, reason string, cause error) error {
	return &MalformedResponseError{Domain: domain, Reason: reason, Cause: cause}
}
