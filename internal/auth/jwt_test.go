package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-key-at-least-32-chars!!"

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "buy4good", time.Hour)

	token, err := m.GenerateAccessToken("user-abc")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	subject, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if subject != "user-abc" {
		t.Errorf("subject = %q, want %q", subject, "user-abc")
	}
}

func TestJWTManager_OpaqueSubject(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "buy4good", time.Hour)

	// Subjects are not UUIDs and must pass through untouched.
	token, err := m.GenerateAccessToken("auth0|5f7c8ec7c33c6c004bbafe82")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	subject, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if subject != "auth0|5f7c8ec7c33c6c004bbafe82" {
		t.Errorf("subject = %q, want provider id unchanged", subject)
	}
}

func TestJWTManager_EmptyToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "buy4good", time.Hour)

	if _, err := m.ValidateAccessToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	m1 := NewJWTManager(testSecret, "buy4good", time.Hour)
	m2 := NewJWTManager("another-secret-key-at-least-32-chars", "buy4good", time.Hour)

	token, err := m1.GenerateAccessToken("user-abc")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m2.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for token signed with different secret")
	}
}

func TestJWTManager_WrongIssuer(t *testing.T) {
	t.Parallel()

	m1 := NewJWTManager(testSecret, "someone-else", time.Hour)
	m2 := NewJWTManager(testSecret, "buy4good", time.Hour)

	token, err := m1.GenerateAccessToken("user-abc")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = m2.ValidateAccessToken(token)
	if err == nil || !strings.Contains(err.Error(), "issuer") {
		t.Fatalf("expected issuer error, got %v", err)
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "buy4good", -time.Minute)

	token, err := m.GenerateAccessToken("user-abc")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
