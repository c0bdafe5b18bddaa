package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()
	email := "a@x.com"

	token, err := GenerateJWT(secret, userID, email, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != email {
		t.Errorf("Email = %q, want %q", claims.Email, email)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error for wrong secret, got nil")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("test-secret", uuid.New(), "a@x.com", time.Nanosecond)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ParseJWT("test-secret", token); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("test-secret", "not-a-token"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestGenerateJWTDefaultExpiration(t *testing.T) {
	token, err := GenerateJWT("test-secret", uuid.New(), "a@x.com", 0)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT("test-secret", token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 6*24*time.Hour || remaining > 7*24*time.Hour {
		t.Errorf("default expiration = %v from now, want ~7 days", remaining)
	}
}
