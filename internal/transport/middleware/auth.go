package middleware

import (
	"net/http"
	"strings"

	"github.com/buy4good/backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// Auth returns middleware that resolves the bearer token to a user id and
// stores it in the context. Requests without a token pass through
// anonymously; services reject them with domain.ErrUnauthorized where a
// user is required.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
