package validators

import (
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid auth token")

const bearerPrefix = "Bearer "

// ParseBearer extracts the opaque POS token from an Authorization header value.
// Only the exact "Bearer " scheme is accepted; the token itself is never inspected.
func ParseBearer(raw string) (string, error) {
	if !strings.HasPrefix(raw, bearerPrefix) {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(raw[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
