package middleware

import "context"

type contextKey string

const ctxToken contextKey = "pos_token"

// TokenFromContext returns the POS bearer token stored by RequireToken.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxToken).(string); ok {
		return v
	}
	return ""
}

// WithToken injects the POS token into the context for downstream handlers.
func WithToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxToken, token)
}
