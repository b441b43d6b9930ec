package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"empdir/internal/domain/auth"
	"empdir/internal/domain/directory"
	"empdir/internal/domain/reports"
	"empdir/internal/platform/config"
	"empdir/internal/platform/db"
	"empdir/internal/platform/metrics"
	authhandler "empdir/internal/transport/http/handlers/auth"
	directoryhandler "empdir/internal/transport/http/handlers/directory"
	reportshandler "empdir/internal/transport/http/handlers/reports"
	"empdir/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		migrationsDir := cfg.MigrationsDir
		if migrationsDir == "" {
			migrationsDir = "migrations"
		}
		if err := db.Migrate(ctx, pool, migrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	store := directory.NewStore(pool)
	service := directory.NewService(store, cfg.JWTSecret, cfg.TokenTTL)
	policy := auth.NewPolicy(store)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	authenticate := middleware.Authenticate(cfg.JWTSecret)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1/auth", func(r chi.Router) {
		authLimit := max(cfg.RateLimitPerMinute/4, 1)
		r.With(middleware.AuthRateLimit(authLimit, time.Minute)).Post("/login", authhandler.NewHandler(service).HandleLogin)

		directoryHandler := directoryhandler.NewHandler(service, policy, cfg.AllowSelfSignup)
		directoryHandler.RegisterRoutes(r, authenticate)

		reportsHandler := reportshandler.NewHandler(reports.NewService(store), policy)
		reportsHandler.RegisterRoutes(r, authenticate)
	})

	return &App{Config: cfg, Pool: pool, Router: router}, nil
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

func Run() {
	cfg := config.Load()

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("employee directory listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
