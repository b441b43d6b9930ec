package auth

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if err := CheckPassword(hash, "super-secret"); err != nil {
		t.Fatalf("expected password to match, got %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, Claims{EmployeeID: "e1"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	parsed, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if parsed.EmployeeID != "e1" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	secret := "test-secret"

	valid, err := GenerateToken(secret, Claims{EmployeeID: "e1"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	expired, err := GenerateToken(secret, Claims{EmployeeID: "e1"}, -time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	foreign, err := GenerateToken("other-secret", Claims{EmployeeID: "e1"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	empty, err := GenerateToken(secret, Claims{}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "tampered", token: valid + "x"},
		{name: "missing employee id", token: empty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseToken(secret, tc.token); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}
