// Package middleware provides HTTP middlewares for authentication, logging,
// and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenResolver maps a bearer token to a user ID.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}

// BearerAuth enforces bearer token authentication.
//
// Requests must carry an "Authorization: Bearer <token>" header. The token
// is resolved to a user ID which is stored in the request context for the
// handlers downstream. Requests with a missing, malformed, unknown, or
// expired token get 401.
func BearerAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}
			userID, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the authenticated user ID from the request
// context. Returns an empty string if not found.
func GetUserIDFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
