package common

import "strings"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken formats an Authorization header value for token.
func BearerToken(token string) string {
	return "Bearer " + token
}

// MaskToken keeps the first few characters of a token for log output.
func MaskToken(token string) string {
	const keep = 6
	if len(token) <= keep {
		return strings.Repeat("*", len(token))
	}
	return token[:keep] + "..."
}
