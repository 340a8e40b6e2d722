package controllers

import (
	"net/http"

	"github.com/Abhi-mygenie/Kiosk/api/responses"
	"github.com/Abhi-mygenie/Kiosk/pkg/types"
)

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, types.MessageResponse{Message: "Kiosk API Ready"})
	}
}
