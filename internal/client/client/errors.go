package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed backend call.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindNotFound
	KindForbidden
	KindServerUnavailable
	KindValidation
	KindRateLimited
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindServerUnavailable:
		return "server_unavailable"
	case KindValidation:
		return "validation"
	case KindRateLimited:
		return "rate_limited"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is the normalized form of a failed backend call. Status is 0 for
// errors raised locally.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err,
// ErrNotAuthenticated) also holds for a backend 401.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// ErrNotAuthenticated is returned by authenticated calls when no session
// is stored. No request is sent in that case.
var ErrNotAuthenticated = &Error{Kind: KindUnauthenticated, Message: "Not authenticated"}

// KindFromStatus maps an HTTP status to a Kind.
func KindFromStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthenticated
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusConflict:
		return KindConflict
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return KindServerUnavailable
	default:
		return KindUnknown
	}
}

// NewHTTPError builds an *Error from a non-2xx response. The message is
// taken from the JSON body's "message", "__type" or "error" field, in that
// order. A body that is not a JSON object is used verbatim. An empty body,
// or a JSON object with none of those fields, yields "HTTP <status>".
func NewHTTPError(status int, body []byte) *Error {
	return &Error{
		Kind:    KindFromStatus(status),
		Status:  status,
		Message: ErrorMessage(status, body),
	}
}

// ErrorMessage extracts a human-readable message from an error body. It is
// shared with the identity provider client, which uses the same envelope.
func ErrorMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Sprintf("HTTP %d", status)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return text
	}

	for _, field := range []string{"message", "__type", "error"} {
		if s, ok := obj[field].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}

	return fmt.Sprintf("HTTP %d", status)
}

// HasKind reports whether err is an *Error of kind k.
func HasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
