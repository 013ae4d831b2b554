package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-must-be-at-least-32-characters-long"

func setupManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(testSecret, 15*time.Minute)
	if err != nil {
		t.Fatalf("Failed to create token manager: %v", err)
	}
	return m
}

func TestNewTokenManager_ShortSecret(t *testing.T) {
	if _, err := NewTokenManager("short", time.Minute); !errors.Is(err, ErrShortSecret) {
		t.Errorf("Expected ErrShortSecret, got %v", err)
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := setupManager(t)

	tests := []struct {
		name    string
		subject string
		role    string
		wantErr error
	}{
		{"editor", "alice", RoleEditor, nil},
		{"viewer", "bob", RoleViewer, nil},
		{"empty subject", "", RoleEditor, ErrEmptySubject},
		{"unknown role", "carol", "root", ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := m.GenerateToken(tt.subject, tt.role)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateToken failed: %v", err)
			}

			claims, err := m.ValidateToken(token)
			if err != nil {
				t.Fatalf("ValidateToken failed: %v", err)
			}
			if claims.Subject != tt.subject || claims.Role != tt.role {
				t.Errorf("Expected %s/%s, got %s/%s", tt.subject, tt.role, claims.Subject, claims.Role)
			}
			if !claims.ExpiresAt.After(claims.IssuedAt) {
				t.Errorf("Expected expiry after issue time, got %v <= %v", claims.ExpiresAt, claims.IssuedAt)
			}
		})
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := setupManager(t)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.GenerateToken("alice", RoleEditor)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	m.now = time.Now
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	m := setupManager(t)

	other, _ := NewTokenManager("another-secret-key-that-is-32-characters!!", time.Minute)
	foreign, _ := other.GenerateToken("mallory", RoleAdmin)
	if _, err := m.ValidateToken(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "mallory", "role": RoleAdmin, "exp": time.Now().Add(time.Hour).Unix(),
	})
	none, _ := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := m.ValidateToken(none); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for alg none, got %v", err)
	}

	if _, err := m.ValidateToken(""); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	m := setupManager(t)
	check := RequireRole(m, RoleEditor)

	editor, _ := m.GenerateToken("alice", RoleEditor)
	admin, _ := m.GenerateToken("root", RoleAdmin)
	viewer, _ := m.GenerateToken("bob", RoleViewer)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"editor allowed", "Bearer " + editor, nil},
		{"admin allowed", "Bearer " + admin, nil},
		{"viewer forbidden", "Bearer " + viewer, ErrForbidden},
		{"missing header", "", ErrMissingToken},
		{"wrong scheme", "Basic " + editor, ErrMissingToken},
		{"garbage", "Bearer not-a-token", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/graphql", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			err := check(req)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
