package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret")

	token, err := manager.Issue("user-123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	userID, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Expected user-123, got %s", userID)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Issue("user-123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = NewTokenManager("secret-b").Verify(token)
	if err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	manager := NewTokenManager("test-secret")

	_, err := manager.Verify("not-a-token")
	if err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret")

	past := time.Now().UTC().Add(-time.Hour)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(past.Add(-TokenTTL)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = manager.Verify(token)
	if err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	manager := NewTokenManager("test-secret")

	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = manager.Verify(token)
	if err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for missing subject, got %v", err)
	}
}
