package middleware

import (
	"context"
	"net/http"
	"strings"

	"empdir/internal/domain/auth"
	"empdir/internal/transport/http/api"
)

const authMessage = "authenticate using a valid token"

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// Identity is the resolved caller, carrying only the employee id from
// the token. Role decisions happen downstream against the store.
type Identity struct {
	EmployeeID string
}

// Authenticate rejects requests without a valid bearer token. A
// missing header, a malformed scheme and an invalid or expired token
// all collapse to the same 401 response.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthenticated", authMessage, GetRequestID(r.Context()))
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthenticated", authMessage, GetRequestID(r.Context()))
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthenticated", authMessage, GetRequestID(r.Context()))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, Identity{EmployeeID: claims.EmployeeID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return identity, ok
}
