package controllers

import (
	"net/http"

	"github.com/Abhi-mygenie/Kiosk/api/responses"
	"github.com/Abhi-mygenie/Kiosk/api/validators"
	"github.com/Abhi-mygenie/Kiosk/internal/auth"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
)

// AuthLogin exchanges kiosk credentials for a POS token.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
