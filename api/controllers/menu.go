package controllers

import (
	"net/http"
	"strings"

	"github.com/Abhi-mygenie/Kiosk/api/middleware"
	"github.com/Abhi-mygenie/Kiosk/api/responses"
	"github.com/Abhi-mygenie/Kiosk/internal/menu"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
)

func MenuCategories(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context(), middleware.TokenFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

// MenuItems lists normalized items, optionally narrowed by ?category=<id>.
func MenuItems(svc menu.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "menu service unavailable"))
			return
		}

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		items, err := svc.ListItems(r.Context(), middleware.TokenFromContext(r.Context()), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}
