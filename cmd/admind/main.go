package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"atelier-admin-core/internal/api"
	"atelier-admin-core/internal/application"
	"atelier-admin-core/internal/config"
	"atelier-admin-core/internal/infrastructure/catalog"
	"atelier-admin-core/internal/infrastructure/idgen"
	"atelier-admin-core/internal/infrastructure/metrics"
	"atelier-admin-core/internal/infrastructure/snapshot"
	"atelier-admin-core/internal/ports"
	"atelier-admin-core/internal/state"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	cfg := config.FromEnv()

	// Optional snapshot cache; without REDIS_ADDR the store falls back to
	// seed data when the catalog API is unreachable at startup.
	var snapshots ports.SnapshotCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		snapshots = snapshot.NewRedisCache(rdb, cfg.SnapshotTTL, logger)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Snapshot cache enabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	syncMetrics := metrics.NewSyncMetrics(registry)

	// Initialize store and services
	store := state.New(logger)
	client := catalog.NewClient(cfg.CatalogBaseURL, logger)
	syncService := application.NewSyncServiceWithOptions(store, client, snapshots, syncMetrics, logger)
	localService := application.NewLocalService(store, idgen.UUIDSource{}, logger)

	// Hydrate from the catalog API; failures fall back to cached or seed data
	hydrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	syncService.Hydrate(hydrateCtx)
	cancel()

	handler := api.NewHandler(store.Facade(), syncService, localService, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Health check - must be public for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Metrics endpoint
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	r.Mount("/api/v1", handler.Routes())

	logger.Info().Str("port", cfg.Port).Msg("Starting admin API server")
	logger.Info().Msg("Swagger documentation available at http://localhost:" + cfg.Port + "/swagger/index.html")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
