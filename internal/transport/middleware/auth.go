package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/pantig-backend/internal/auth"
	"github.com/heartmarshall/pantig-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth attaches the bearer token's identity to the request context.
// Requests without a token pass through anonymously; an invalid token is
// rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if rec, ok := w.(subjectRecorder); ok {
				rec.recordSubject(id.Subject)
			}
			ctx := ctxutil.WithSubject(r.Context(), id.Subject)
			ctx = ctxutil.WithUserRole(ctx, id.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	const prefix = "bearer "
	h := r.Header.Get("Authorization")
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// JWTValidator adapts a JWT manager to the Auth middleware.
type JWTValidator struct {
	Manager interface {
		ValidateAccessToken(token string) (auth.Identity, error)
	}
}

// ValidateToken implements tokenValidator.
func (v JWTValidator) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	return v.Manager.ValidateAccessToken(token)
}
