package middleware

import (
	"context"
	"net/http"
	"quiz_backend/pkg/token"
	"strings"
)

type ctxKey struct{}

// SessionAuth проверяет Bearer токен сессии и кладёт ID сессии в контекст запроса
func SessionAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifySessionToken(strings.TrimPrefix(h, "Bearer "), secretKey)
			if err != nil {
				http.Error(w, "invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
