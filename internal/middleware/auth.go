package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/giftmart/giftadmin/internal/models"
)

// TokenService verifies admin bearer tokens
type TokenService interface {
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

type contextKey int

const (
	contextKeyPayload contextKey = iota
)

// Auth extracts the bearer token from the Authorization header and passes
// the verified payload to the context
func Auth(ts TokenService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyPayload, payload)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Payload extracts the verified token payload from the context
func Payload(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(contextKeyPayload).(*models.TokenPayload)
	return payload, ok
}
