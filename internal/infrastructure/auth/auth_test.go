package auth

import (
	"testing"
	"time"
)

func TestTokenManager(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		if _, err := NewTokenManager("", time.Hour); err != ErrMissingSigningKey {
			t.Fatalf("expected ErrMissingSigningKey, got %v", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		m, _ := NewTokenManager("secret", time.Hour)
		token, exp, err := m.GenerateToken("user-1", "admin", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exp.After(time.Now()) {
			t.Fatalf("expected future expiry")
		}
		claims, err := m.ValidateToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != "user-1" || claims.Username != "admin" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		a, _ := NewTokenManager("a", time.Hour)
		b, _ := NewTokenManager("b", time.Hour)
		token, _, _ := a.GenerateToken("user-1", "admin", "admin")
		if _, err := b.ValidateToken(token); err == nil {
			t.Fatalf("expected signature error")
		}
	})

	t.Run("expired", func(t *testing.T) {
		m, _ := NewTokenManager("secret", time.Hour)
		token, _, _ := m.GenerateToken("user-1", "admin", "admin")
		m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := m.ValidateToken(token); err == nil {
			t.Fatalf("expected expiry error")
		}
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !CheckPassword(hash, "s3cret") {
		t.Fatalf("expected password to match")
	}
	if CheckPassword(hash, "other") {
		t.Fatalf("expected mismatch")
	}
}
