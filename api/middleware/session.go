package middleware

import (
	"context"
	"net/http"

	"github.com/Abhi-mygenie/Kiosk/api/responses"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
)

// SessionVerifier checks a bearer token with the POS.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) error
}

// RequireSession must run after RequireToken. It lets the request through only when the
// POS accepts the token.
func RequireSession(verifier SessionVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := TokenFromContext(ctx)
			if token == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing or invalid bearer token"))
				return
			}
			if verifier == nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDependency, "session verification unavailable"))
				return
			}
			if err := verifier.VerifySession(ctx, token); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
