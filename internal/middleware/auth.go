package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bryanwahyu/spinalscan/internal/infra/token"
)

type contextKey string

const claimsKey contextKey = "claims"

// JWTAuth verifies the bearer token on every request and stores the
// claims in the request context. Missing, malformed and expired
// tokens all short-circuit with 401 before any handler runs.
func JWTAuth(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				unauthorized(w, "No token provided")
				return
			}

			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if raw == "" || raw == auth {
				unauthorized(w, "Invalid token format")
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				unauthorized(w, "Token is invalid or has expired")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the verified claims set by JWTAuth, or nil.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	if c, ok := ctx.Value(claimsKey).(*token.Claims); ok {
		return c
	}
	return nil
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
