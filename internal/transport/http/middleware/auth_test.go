package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"empdir/internal/domain/auth"
)

func TestAuthenticateSetsIdentity(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{EmployeeID: "e1"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	var called bool
	handler := Authenticate(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		identity, ok := GetIdentity(r.Context())
		if !ok {
			t.Fatal("expected identity in context")
		}
		if identity.EmployeeID != "e1" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	secret := "test-secret"
	expired, err := auth.GenerateToken(secret, auth.Claims{EmployeeID: "e1"}, -time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "no token part", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := Authenticate(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
