package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
)

var (
	// ErrNotFound is returned when the shop answers 404.
	ErrNotFound = errors.New("woocommerce: not found")

	// ErrUnauthorized is returned for 401 and 403 answers.
	ErrUnauthorized = errors.New("woocommerce: unauthorized")

	// ErrEmptyCart is returned by CreateOrder when there is nothing to order.
	ErrEmptyCart = errors.New("woocommerce: cart is empty")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or
	// lacks required fields.
	ErrMalformedResponse = errors.New("woocommerce: malformed response")

	// ErrRegistrationDisabled is returned when no registration credentials are configured.
	ErrRegistrationDisabled = errors.New("woocommerce: registration credentials not configured")
)

// maxErrorBody bounds the body kept on an APIError.
const maxErrorBody = 512

// APIError is a non-2xx answer from the shop.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Code != "" || e.Message != "" {
		return fmt.Sprintf("woocommerce: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("woocommerce: status=%d body=%s", e.StatusCode, e.Body)
}

// Is lets errors.Is match APIError against ErrNotFound and ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// newAPIError builds an APIError from a WordPress REST error body
// {"code": "...", "message": "...", "data": {"status": n}}.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: truncate(string(body), maxErrorBody)}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	return apiErr
}

// Kind groups failures by what the shopper can do about them.
type Kind int

const (
	KindNone Kind = iota
	KindNetwork
	KindUnauthorized
	KindNotFound
	KindInvalid
	KindServer
	KindEmptyCart
	KindUnknown
)

// String returns a short English name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid request"
	case KindServer:
		return "server error"
	case KindEmptyCart:
		return "empty cart"
	default:
		return "unknown"
	}
}

// Classify maps err to a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrEmptyCart) {
		return KindEmptyCart
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrRegistrationDisabled) {
		return KindUnauthorized
	}
	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}
	if errors.Is(err, ErrMalformedResponse) {
		return KindServer
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 500 {
			return KindServer
		}
		return KindInvalid
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}
	return KindUnknown
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
