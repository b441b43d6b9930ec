package shared

import (
	"net/http/httptest"
	"testing"
)

func TestValidatorEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantBad bool
	}{
		{name: "valid", value: "a@example.com"},
		{name: "blank", value: "", wantBad: true},
		{name: "no domain", value: "a@", wantBad: true},
		{name: "no at sign", value: "example.com", wantBad: true},
		{name: "display name form", value: "Alice <a@example.com>", wantBad: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewValidator()
			v.Email("email", tc.value, "enter a valid email")
			if v.HasIssues() != tc.wantBad {
				t.Fatalf("Email(%q): issues=%v, want %v", tc.value, v.HasIssues(), tc.wantBad)
			}
		})
	}
}

func TestValidatorMinLen(t *testing.T) {
	v := NewValidator()
	v.MinLen("name", "ab", 3, "enter a valid name")
	v.MinLen("password", "12345", 5, "password must be at least 5 characters")

	issues := v.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %+v", issues)
	}
	if issues[0].Field != "name" {
		t.Fatalf("unexpected field: %+v", issues[0])
	}
}

func TestValidatorMinLenTrimsWhitespace(t *testing.T) {
	v := NewValidator()
	v.MinLen("name", "  a  ", 3, "enter a valid name")
	if !v.HasIssues() {
		t.Fatal("expected whitespace-padded value to fail")
	}
}

func TestRejectWritesValidationResponse(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("expected no rejection without issues")
	}

	v.Required("role", "", "role is required")
	rec = httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
