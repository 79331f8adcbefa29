package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-event-checkin/internal/domain"
)

type contextKey string

const mobileKey contextKey = "mobile"

// TokenVerifier resolves a bearer token to the mobile number it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth returns middleware that validates the Bearer token and injects the
// verified mobile-number identity into the request context. Handlers then
// compare that identity against the resource they are asked for.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			mobile, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					writeJSONError(w, http.StatusUnauthorized, "token has expired")
					return
				}
				writeJSONError(w, http.StatusUnauthorized, "could not validate credentials")
				return
			}
			ctx := context.WithValue(r.Context(), mobileKey, mobile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MobileFromContext extracts the verified mobile identity from the request context.
func MobileFromContext(ctx context.Context) (string, bool) {
	m, ok := ctx.Value(mobileKey).(string)
	return m, ok
}
