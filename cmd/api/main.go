package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopvibe/storefront-backend/api/routes"
	"github.com/shopvibe/storefront-backend/internal/accounts"
	cartsvc "github.com/shopvibe/storefront-backend/internal/cart"
	"github.com/shopvibe/storefront-backend/internal/catalog"
	checkoutsvc "github.com/shopvibe/storefront-backend/internal/checkout"
	"github.com/shopvibe/storefront-backend/internal/wishlist"
	"github.com/shopvibe/storefront-backend/pkg/config"
	"github.com/shopvibe/storefront-backend/pkg/logger"
	"github.com/shopvibe/storefront-backend/pkg/metrics"
	"github.com/shopvibe/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	catalogService, err := catalog.NewService(catalog.DefaultProducts)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartsvc.NewRedisStore(redisClient, logg))
	if err != nil {
		logg.Error(context.Background(), "failed to build cart service", err)
		os.Exit(1)
	}

	accountService := accounts.NewService()

	checkoutService, err := checkoutsvc.NewService(
		cartService,
		accountService,
		checkoutsvc.RulesFromConfig(cfg.Checkout),
		cfg.Checkout.ProcessingDelay,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build checkout service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(redisClient, catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to build wishlist service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			registry,
			httpMetrics,
			catalogService,
			cartService,
			checkoutService,
			accountService,
			wishlistService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
