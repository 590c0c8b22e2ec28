package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id, set by AuthnMiddleware.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the authenticated user id stored by
// AuthnMiddleware, or "" when the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
