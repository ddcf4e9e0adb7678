package httpx

import "context"

type ctxKey string

const (
	// CtxKeyIdentity holds the authenticated caller identity (JWT sub).
	CtxKeyIdentity ctxKey = "identity"
)

// IdentityFromContext returns the authenticated caller identity, or ""
// when the request was not authenticated.
func IdentityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyIdentity).(string); ok {
		return v
	}
	return ""
}
