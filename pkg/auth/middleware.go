package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// RequireRole returns a request check that passes only for a valid token
// whose role is at least required.
func RequireRole(m *TokenManager, required string) func(*http.Request) error {
	return func(r *http.Request) error {
		token, err := BearerToken(r)
		if err != nil {
			return err
		}
		claims, err := m.ValidateToken(token)
		if err != nil {
			return err
		}
		if !claims.Allows(required) {
			return fmt.Errorf("%w: %s requires %s", ErrForbidden, claims.Role, required)
		}
		return nil
	}
}
