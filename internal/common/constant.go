// Package common contains shared constants and small helpers used across
// BookArc client components.
package common

const (
	// AuthorizationHeaderName carries the bearer ID token on backend calls.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName is attached to every outbound backend request so
	// client logs can be correlated with gateway logs.
	RequestIDHeaderName = "X-Request-Id"

	// AmzTargetHeaderName selects the identity provider action.
	AmzTargetHeaderName = "X-Amz-Target"

	// SessionKey is the fixed key the session is persisted under.
	SessionKey = "userSession"
)
