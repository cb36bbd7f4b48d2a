// Package main is the entry point for the wedding site server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vowsite/internal/cache"
	"vowsite/internal/compose"
	"vowsite/internal/config"
	"vowsite/internal/database"
	"vowsite/internal/handlers"
	"vowsite/internal/router"
	"vowsite/internal/storage"
	"vowsite/internal/store"
)

func main() {
	// Structured logger — text output, debug level everywhere for now.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"base_url", cfg.BaseURL,
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible rendered-page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Connect to S3-compatible object storage (optional — the editor works
	// without it, media uploads just return 503).
	var uploads handlers.Uploader
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			uploads = storageClient
			slog.Info("s3 storage connected",
				"endpoint", cfg.S3Endpoint,
				"bucket", cfg.S3Bucket,
			)
		}
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	websiteStore := store.NewWebsiteStore(db)
	siteCache := cache.NewSiteCache(valkeyClient, cache.DefaultSiteTTL)
	engine := compose.NewEngine(cfg.BaseURL)

	// The bare hostname of BaseURL tells the public handler which Host
	// headers are "ours" versus a couple's custom domain.
	baseHost := cfg.BaseURL
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Hostname() != "" {
		baseHost = u.Hostname()
	}

	editorAPI := handlers.NewEditor(websiteStore, siteCache, uploads)
	public := handlers.NewPublic(engine, websiteStore, siteCache, baseHost)

	// Set up the Chi router with all middleware and routes.
	r := router.New(editorAPI, public)

	// Create the HTTP server with sensible timeouts. Rendering is cheap and
	// cached, so the write timeout stays tight.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
