package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/taskdeck/pkg/slogx"
)

// AccessVerifier resolves a bearer access token to the user id it asserts.
// Verification is pure: (token, current time, secret) -> (userId | error).
type AccessVerifier interface {
	VerifyAccess(token string) (string, error)
}

// AuthnMiddleware extracts the bearer access token from the Authorization
// header, verifies it, and stores the resolved user id in the request
// context. Missing, malformed, expired, and forged tokens all get the same
// 401 response.
func AuthnMiddleware(v AccessVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			userID, err := v.VerifyAccess(raw)
			if err != nil {
				log.Warn("access token verification failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
