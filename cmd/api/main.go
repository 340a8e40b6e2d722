package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/Abhi-mygenie/Kiosk/api/controllers"
	"github.com/Abhi-mygenie/Kiosk/api/middleware"
	"github.com/Abhi-mygenie/Kiosk/api/routes"
	"github.com/Abhi-mygenie/Kiosk/internal/auth"
	"github.com/Abhi-mygenie/Kiosk/internal/cache"
	"github.com/Abhi-mygenie/Kiosk/internal/menu"
	"github.com/Abhi-mygenie/Kiosk/internal/orders"
	"github.com/Abhi-mygenie/Kiosk/internal/tables"
	"github.com/Abhi-mygenie/Kiosk/pkg/config"
	"github.com/Abhi-mygenie/Kiosk/pkg/db"
	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	"github.com/Abhi-mygenie/Kiosk/pkg/instance"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/metrics"
	"github.com/Abhi-mygenie/Kiosk/pkg/migrate"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
	"github.com/Abhi-mygenie/Kiosk/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "kiosk-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "kiosk-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
		File:        cfg.App.LogFile,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	var (
		store     cache.Store                  = cache.NewMemoryStore()
		rateStore middleware.RateLimiterStore = middleware.NewMemoryRateStore()
		pingers                               = map[string]controllers.Pinger{"db": dbClient}
	)
	if cfg.Redis.Enabled() {
		var redisClient *redis.Client
		if redisClient, err = redis.New(ctx, cfg.Redis, logg); err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		if store, err = cache.NewRedisStore(redisClient); err != nil {
			return err
		}
		rateStore = redisClient
		pingers["redis"] = redisClient
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	cacheMetrics := metrics.NewCacheMetrics(reg)

	posClient, err := pos.NewClient(cfg.POS, logg, pos.WithMetrics(metrics.NewPOSMetrics(reg)))
	if err != nil {
		return err
	}

	foods, err := cache.New(cache.Params[[]pos.RawFood]{
		Kind:    enums.ResourceKindMenu,
		TTL:     cfg.Cache.MenuTTL,
		Store:   store,
		Fetch:   posClient.ListFoods,
		Logger:  logg,
		Metrics: cacheMetrics,
	})
	if err != nil {
		return err
	}
	rawTables, err := cache.New(cache.Params[[]pos.RawTable]{
		Kind:    enums.ResourceKindTables,
		TTL:     cfg.Cache.TablesTTL,
		Store:   store,
		Fetch:   posClient.ListTables,
		Logger:  logg,
		Metrics: cacheMetrics,
	})
	if err != nil {
		return err
	}

	authService, err := auth.NewService(posClient, logg)
	if err != nil {
		return err
	}
	menuService, err := menu.NewService(foods)
	if err != nil {
		return err
	}
	tablesService, err := tables.NewService(tables.ServiceParams{
		Source:          rawTables,
		Logger:          logg,
		FallbackEnabled: cfg.Tables.FallbackEnabled,
		FallbackCount:   cfg.Tables.FallbackCount,
	})
	if err != nil {
		return err
	}
	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:       orders.NewRepository(dbClient.DB()),
		Tx:         dbClient,
		POS:        posClient,
		Logger:     logg,
		AdoptPOSID: cfg.Orders.AdoptPOSID,
	})
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Dependencies{
			Auth:      authService,
			Menu:      menuService,
			Tables:    tablesService,
			Orders:    ordersService,
			Sessions:  tablesService,
			RateStore: rateStore,
			Pingers:   pingers,
			Gatherer:  reg,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"instance":   instance.GetID(),
		"db_driver":  dbClient.Driver(),
		"redis":      cfg.Redis.Enabled(),
		"pos_target": cfg.POS.BaseURL,
	})
	logg.Info(logCtx, "starting api server")

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logg.Info(logCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(groupCtx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
