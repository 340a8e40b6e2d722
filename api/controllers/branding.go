package controllers

import (
	"net/http"
	"strings"

	"github.com/Abhi-mygenie/Kiosk/api/responses"
	"github.com/Abhi-mygenie/Kiosk/pkg/config"
)

// BrandingResponse is the kiosk theme payload.
type BrandingResponse struct {
	PrimaryColor   string  `json:"primary_color"`
	AccentColor    string  `json:"accent_color"`
	LogoURL        *string `json:"logo_url"`
	RestaurantName string  `json:"restaurant_name"`
}

func Branding(cfg config.BrandingConfig) http.HandlerFunc {
	body := BrandingResponse{
		PrimaryColor:   cfg.PrimaryColor,
		AccentColor:    cfg.AccentColor,
		RestaurantName: cfg.RestaurantName,
	}
	if logo := strings.TrimSpace(cfg.LogoURL); logo != "" {
		body.LogoURL = &logo
	}
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, body)
	}
}
