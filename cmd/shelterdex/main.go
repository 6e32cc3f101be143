package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/grazioso-salvare/shelterdex/internal/config"
	"github.com/grazioso-salvare/shelterdex/internal/db/cache"
	dbMongo "github.com/grazioso-salvare/shelterdex/internal/db/mongo"
	logpkg "github.com/grazioso-salvare/shelterdex/internal/logger"
	"github.com/grazioso-salvare/shelterdex/internal/metrics"
	animalrepo "github.com/grazioso-salvare/shelterdex/internal/repository/animal"
	"github.com/grazioso-salvare/shelterdex/internal/repository/statcache"
	chiTransport "github.com/grazioso-salvare/shelterdex/internal/transport/chi"
	animaluc "github.com/grazioso-salvare/shelterdex/internal/usecase/animal"
	healthuc "github.com/grazioso-salvare/shelterdex/internal/usecase/health"
	provisionuc "github.com/grazioso-salvare/shelterdex/internal/usecase/provision"
	"github.com/grazioso-salvare/shelterdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shelterdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_database", cfg.Database.Database),
		zap.String("db_collection", cfg.Database.Collection),
	)

	ctx := context.Background()

	store, err := dbMongo.NewStore(ctx, dbMongo.Config{
		URI:      cfg.Database.URI,
		Database: cfg.Database.Database,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer func() { _ = store.Close(context.Background()) }()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register cache metrics explicitly (no init())
	metrics.RegisterCacheMetrics()

	// Optional stats cache. An empty addrs list disables it entirely.
	var cacheClient *cache.Client
	if len(cfg.Cache.Addrs) > 0 {
		cacheClient, err = cache.New(cache.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create stats cache", zap.Error(err))
		}
		defer cacheClient.Close()
		logger.Info("Stats cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Repositories
	repo := animalrepo.New(store, cfg.Database.Collection)

	var stats animaluc.Stats = repo
	if cacheClient != nil {
		stats = statcache.New(
			repo, cacheClient,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.StatsCacheTotal, logger,
		)
	}

	// Use case services
	animalSvc := animaluc.New(repo, stats).
		WithPagination(cfg.Query.DefaultPageSize, cfg.Query.MaxPageSize)
	provisionSvc := provisionuc.New(store, cfg.Database.Collection, logger)

	// Pass nil interface (not typed nil pointer!) if the cache is disabled.
	var cachePinger healthuc.Pinger
	if cacheClient != nil {
		cachePinger = cacheClient
	}
	healthSvc := healthuc.New(store, cachePinger, logger)

	// Create chi server
	server := chiTransport.NewServer(animalSvc, provisionSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
