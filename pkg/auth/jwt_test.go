package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	config := DefaultJWTConfig()

	token, err := GenerateToken(42, "alice", "customer", config)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	claims, err := ParseToken(token, config)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("Expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Expected username alice, got %q", claims.Username)
	}
	if claims.Role != "customer" {
		t.Errorf("Expected role customer, got %q", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "bob", "admin", &JWTConfig{
		Secret:         "secret-a",
		Issuer:         "test",
		ExpirationTime: time.Hour,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	_, err = ParseToken(token, &JWTConfig{
		Secret:         "secret-b",
		Issuer:         "test",
		ExpirationTime: time.Hour,
	})
	if err == nil {
		t.Fatal("Expected a signature error, got none")
	}
}

func TestParseExpiredToken(t *testing.T) {
	config := &JWTConfig{
		Secret:         "secret",
		Issuer:         "test",
		ExpirationTime: -time.Minute,
	}

	token, err := GenerateToken(1, "bob", "admin", config)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := ParseToken(token, config); err == nil {
		t.Fatal("Expected an expiry error, got none")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"Basic dXNlcjpwdw==", ""},
		{"Bearer", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractTokenFromHeader(tt.header); got != tt.want {
			t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
