// Package upstream holds the failure classification shared by the HTTP
// clients that talk to third-party APIs.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

const maxBodyPreview = 256

var (
	// ErrNetworkTimeout is returned when an upstream call did not complete in time.
	ErrNetworkTimeout = errors.New("upstream request timed out")
	// ErrMalformedResponse is returned when a response body cannot be decoded
	// or does not satisfy its schema. Retrying will not help.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// StatusError describes a non-2xx reply from an upstream service.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func NewStatusError(service string, statusCode int, body []byte) *StatusError {
	preview := strings.TrimSpace(string(body))
	if len(preview) > maxBodyPreview {
		preview = preview[:maxBodyPreview] + "..."
	}
	return &StatusError{Service: service, StatusCode: statusCode, Body: preview}
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

// Transient reports whether the status is worth retrying.
func (e *StatusError) Transient() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// WrapTransport converts an error from http.Client.Do into the taxonomy.
func WrapTransport(service string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s: %w: %w", service, ErrNetworkTimeout, err)
	}
	return fmt.Errorf("%s: failed to fetch: %w", service, err)
}

// Malformed marks err as a schema or decoding failure.
func Malformed(service string, err error) error {
	return fmt.Errorf("%s: %w: %w", service, ErrMalformedResponse, err)
}

// IsTransient classifies an upstream failure. Timeouts, connection-level
// failures and 5xx/429 statuses are transient; malformed bodies, TLS and
// protocol errors, other statuses and caller cancellation are not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedResponse) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, ErrNetworkTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Transient()
	}
	// *url.Error satisfies net.Error too, so only a timeout counts here;
	// TLS and scheme failures are final
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
