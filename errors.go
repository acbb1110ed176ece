package twitterapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingCredentials is returned by NewClient when the application
// key or secret is empty.
var ErrMissingCredentials = errors.New("twitterapi: application key and secret are required")

// ErrMissingSecret is returned by Authorize when OAuth mode is
// requested without a token secret. The secret is needed to compute
// the signing key, so the misconfiguration is reported up front rather
// than at request time.
var ErrMissingSecret = errors.New("twitterapi: oauth authorization requires a token secret")

// TransportError wraps a failure of the underlying HTTP call. No
// retries are attempted; the error is surfaced to the caller as-is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("twitterapi: request failed: %v", e.Err)
}

// Cause supports errors.Cause unwrapping.
func (e *TransportError) Cause() error { return e.Err }

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded: a
// non-empty body that is not valid JSON for a regular endpoint, or not
// a valid form encoding for the token endpoint. The call is aborted
// rather than returning partial data, so callers can tell a valid
// empty result from a corrupt payload.
type ParseError struct {
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("twitterapi: malformed response body (status %d): %v", e.StatusCode, e.Err)
}

// Cause supports errors.Cause unwrapping.
func (e *ParseError) Cause() error { return e.Err }

func (e *ParseError) Unwrap() error { return e.Err }
