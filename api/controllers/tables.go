package controllers

import (
	"net/http"

	"github.com/Abhi-mygenie/Kiosk/api/middleware"
	"github.com/Abhi-mygenie/Kiosk/api/responses"
	"github.com/Abhi-mygenie/Kiosk/internal/tables"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
)

func Tables(svc tables.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "tables service unavailable"))
			return
		}

		result, err := svc.List(r.Context(), middleware.TokenFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
