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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HKKoho/DocumentHub/internal/config"
	"github.com/HKKoho/DocumentHub/internal/db"
	dbMemory "github.com/HKKoho/DocumentHub/internal/db/memory"
	dbRedis "github.com/HKKoho/DocumentHub/internal/db/redis"
	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/i18n"
	logpkg "github.com/HKKoho/DocumentHub/internal/logger"
	"github.com/HKKoho/DocumentHub/internal/metrics"
	documentrepo "github.com/HKKoho/DocumentHub/internal/repository/document"
	chiTransport "github.com/HKKoho/DocumentHub/internal/transport/chi"
	s3Transport "github.com/HKKoho/DocumentHub/internal/transport/s3"
	attachmentuc "github.com/HKKoho/DocumentHub/internal/usecase/attachment"
	documentuc "github.com/HKKoho/DocumentHub/internal/usecase/document"
	facetuc "github.com/HKKoho/DocumentHub/internal/usecase/facet"
	healthuc "github.com/HKKoho/DocumentHub/internal/usecase/health"
	searchuc "github.com/HKKoho/DocumentHub/internal/usecase/search"
	"github.com/HKKoho/DocumentHub/internal/version"
)

func main() {
	_ = godotenv.Load()

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

	logger.Info("Starting DocumentHub API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create database store based on driver
	var store db.Store
	switch cfg.Database.Driver {
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
	case "memory":
		store = dbMemory.NewStore()
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register catalog metrics explicitly (no init())
	metrics.RegisterSearchMetrics()
	metrics.RegisterCatalogMetrics()

	// Locale dictionaries. A registry with zero dictionaries renders
	// everything in its stored form.
	reg, err := i18n.LoadFiles(cfg.Locales.Dictionaries...)
	if err != nil {
		logger.Fatal("Failed to load locale dictionaries", zap.Error(err))
	}
	logger.Info("Locale dictionaries loaded", zap.Strings("files", cfg.Locales.Dictionaries))

	// Facet vocabulary; a category listed in config replaces the built-in
	// values for that category, unlisted categories keep the defaults
	vocabValues := make(map[facet.Category][]string, len(cfg.Catalog.Vocabulary))
	for cat, vs := range cfg.Catalog.Vocabulary {
		vocabValues[facet.Category(cat)] = vs
	}
	vocab := facet.NewVocabulary(vocabValues)

	// Create repositories (domain-native, no adapters)
	docRepo := documentrepo.New(store, cfg.Storage.KeyPrefix)

	// Create use case services
	searchSvc := searchuc.New(docRepo, reg, vocab)
	docSvc := documentuc.New(docRepo, vocab).
		WithPagination(cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxPageSize)
	facetSvc := facetuc.New(vocab, reg, docRepo)

	// Attachment service, only when object storage is configured.
	// Pass nil interface (not typed nil pointer!) if storage is not configured.
	// Go gotcha: (*Presigner)(nil) wrapped in StorageChecker != nil.
	var attachmentSvc *attachmentuc.Service
	var storageChecker healthuc.StorageChecker
	if cfg.Attachments.Enabled {
		presigner, err := s3Transport.NewPresigner(&s3Transport.Config{
			Endpoint:        cfg.Attachments.Endpoint,
			Region:          cfg.Attachments.Region,
			Bucket:          cfg.Attachments.Bucket,
			AccessKeyID:     cfg.Attachments.AccessKeyID,
			SecretAccessKey: cfg.Attachments.SecretAccessKey,
		})
		if err != nil {
			logger.Fatal("Failed to create attachment presigner", zap.Error(err))
		}
		attachmentSvc = attachmentuc.New(
			presigner,
			cfg.Attachments.MaxSizeMB,
			time.Duration(cfg.Attachments.URLExpiryMinutes)*time.Minute,
		)
		storageChecker = presigner
		logger.Info("Attachment uploads enabled",
			zap.String("endpoint", cfg.Attachments.Endpoint),
			zap.String("bucket", cfg.Attachments.Bucket),
			zap.Int("max_size_mb", cfg.Attachments.MaxSizeMB),
		)
	}

	// Health service
	healthSvc := healthuc.New(store, storageChecker)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, docSvc, facetSvc, attachmentSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())

	r.Post("/api/v1/search", server.SearchDocuments)
	r.Get("/api/v1/documents", server.ListDocuments)
	r.Post("/api/v1/documents", server.CreateDocument)
	r.Get("/api/v1/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		server.GetDocument(w, r, chi.URLParam(r, "id"))
	})
	r.Post("/api/v1/attachments/upload-url", server.CreateUploadURL)
	r.Get("/api/v1/facets", server.ListFacets)
	r.Get("/health", server.HealthCheck)
	r.Get("/metrics", server.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "not_found",
			"message": "route not found",
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "method_not_allowed",
			"message": "method not allowed",
		})
	})

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

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
