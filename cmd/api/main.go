package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/appmarket/docs/swagger"
	"github.com/ghuser/appmarket/pkg/app"
	"github.com/ghuser/appmarket/pkg/auth"
	"github.com/ghuser/appmarket/pkg/cache"
	"github.com/ghuser/appmarket/pkg/config"
	"github.com/ghuser/appmarket/pkg/database"
	"github.com/ghuser/appmarket/pkg/docstore"
	"github.com/ghuser/appmarket/pkg/events"
	"github.com/ghuser/appmarket/pkg/httpx"
	"github.com/ghuser/appmarket/pkg/logger"
	"github.com/ghuser/appmarket/pkg/telemetry"
	catalogApi "github.com/ghuser/appmarket/services/catalog/application/api"
	reviewApi "github.com/ghuser/appmarket/services/review/application/api"
	"github.com/ghuser/appmarket/services/review/application/subscribers"
	reviewPostgres "github.com/ghuser/appmarket/services/review/infrastructure/persistence/postgres"
)

// @title					AppMarket API
// @version				1.0
// @description			App marketplace API: product catalog and reviews with derived ratings.
// @termsOfService			http://swagger.io/terms/
// @contact.name			API Support
// @contact.email			support@appmarket.dev
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.ReviewsDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to reviews database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("reviews database pool connected")

	catalogStore, err := docstore.Connect(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to catalog store", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer catalogStore.Close(ctx) //nolint:errcheck
	log.Info("catalog store connected")

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	bus := events.New(log, events.WithWorkers(cfg.EventWorkers))
	defer bus.Shutdown()
	log.Info("event bus started", "workers", cfg.EventWorkers)

	// The bridge owner goroutine serializes catalog rating writes issued by
	// the bus workers. Cancelling bridgeCtx stops the owner; callers then
	// fall back to inline execution.
	bridge := events.NewBridge()
	bridgeCtx, stopBridge := context.WithCancel(ctx)
	defer stopBridge()
	go bridge.Run(bridgeCtx)

	sessionStore := auth.NewSessionStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Db:           pool,
		Catalog:      catalogStore,
		Logger:       log,
		Bus:          bus,
		Bridge:       bridge,
		Redis:        redisClient,
		SessionStore: sessionStore,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		Catalog:  catalogStore,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(":8080", r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api and wires the rating
// aggregation subscriber against both bounded contexts.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogSvcs := catalogApi.CatalogRoutes(r, a)
	reviewApi.ReviewRoutes(r, a, catalogSvcs.Product)

	aggregator := subscribers.NewRatingAggregator(
		reviewPostgres.NewReviewRepository(a.Db),
		catalogSvcs.Product,
		a.Bridge,
		a.Logger,
	)
	subscribers.Setup(a.Bus, aggregator)
}
