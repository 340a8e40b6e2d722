package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Abhi-mygenie/Kiosk/api/controllers"
	"github.com/Abhi-mygenie/Kiosk/api/middleware"
	"github.com/Abhi-mygenie/Kiosk/internal/auth"
	"github.com/Abhi-mygenie/Kiosk/internal/menu"
	"github.com/Abhi-mygenie/Kiosk/internal/orders"
	"github.com/Abhi-mygenie/Kiosk/internal/tables"
	"github.com/Abhi-mygenie/Kiosk/pkg/config"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
)

// Dependencies collects what the HTTP surface needs. Nil pingers are left out of readiness.
type Dependencies struct {
	Auth      auth.Service
	Menu      menu.Service
	Tables    tables.Service
	Orders    orders.Service
	// Sessions gates the order read routes, which take no token of their own.
	Sessions  middleware.SessionVerifier
	RateStore middleware.RateLimiterStore
	Pingers   map[string]controllers.Pinger
	Gatherer  prometheus.Gatherer
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.Origins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, logg, deps.Pingers))
	})

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", controllers.Root())
		r.Get("/config/branding", controllers.Branding(cfg.Branding))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateStore, logg)).Post("/auth/login", controllers.AuthLogin(deps.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireToken(logg))

			r.Get("/menu/categories", controllers.MenuCategories(deps.Menu, logg))
			r.Get("/menu/items", controllers.MenuItems(deps.Menu, logg))
			r.Get("/tables", controllers.Tables(deps.Tables, logg))
			r.Post("/orders", controllers.OrderCreate(deps.Orders, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession(deps.Sessions, logg))

				r.Get("/orders", controllers.OrderList(deps.Orders, logg))
				r.Get("/orders/{orderId}", controllers.OrderGet(deps.Orders, logg))
			})
		})
	})

	return r
}
