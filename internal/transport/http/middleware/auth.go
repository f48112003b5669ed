package middleware

import (
	"context"
	"net/http"
	"strings"

	"rhdesk/internal/domain/auth"
	"rhdesk/internal/transport/http/api"
)

type ctxKey int

const identityKey ctxKey = iota

// Authenticate verifies the Bearer token and stores the caller's
// identity on the request context. Requests without a valid token
// are rejected with 401.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "missing authorization header", GetRequestID(r.Context()))
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authorization header must be a bearer token", GetRequestID(r.Context()))
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token", GetRequestID(r.Context()))
				return
			}

			identity := auth.Identity{
				UserID:     claims.UserID,
				EmployeeID: claims.EmployeeID,
				Role:       claims.Role,
				Email:      claims.Email,
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireHR rejects non-HR callers before the handler runs.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok || !identity.IsHR() {
			api.Fail(w, http.StatusForbidden, "forbidden", "hr role required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}
