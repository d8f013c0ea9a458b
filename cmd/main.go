package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"snaplink/internal/adapter/cache"
	"snaplink/internal/adapter/geo"
	httpadapter "snaplink/internal/adapter/http"
	"snaplink/internal/adapter/postgres"
	"snaplink/internal/adapter/queue"
	"snaplink/internal/adapter/upload"
	"snaplink/internal/adapter/usecase"
	"snaplink/internal/adapter/useragent"
	"snaplink/internal/config"
	"snaplink/internal/db"
)

// main is the entry point of the snaplink service. It loads configuration,
// optionally migrates and seeds the database, wires the adapters, starts the
// click enrichment worker and the HTTP server, and shuts both down
// gracefully on SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Warn("redis address not set, link cache disabled")
	}

	auth := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		for _, actor := range db.DemoActors() {
			token, err := auth.Issue(actor, cfg.Auth.TokenTTL)
			if err != nil {
				return fmt.Errorf("issue demo token: %w", err)
			}
			logger.Info("demo account",
				slog.String("role", actor.Role.String()),
				slog.String("id", actor.ID.String()),
				slog.String("token", token),
			)
		}
	}

	clicks, err := queue.NewClickQueue(cfg.Queue, logger)
	if err != nil {
		return fmt.Errorf("click queue: %w", err)
	}

	svc := usecase.NewLinkUseCase(
		postgres.NewLinkRepository(pool),
		cache.NewLinkCache(rdb, cfg.Redis.TTL),
		clicks,
		geo.NewClient(cfg.Geo.BaseURL, cfg.Geo.Timeout),
		useragent.NewDetector(),
		logger,
		usecase.WithGeoRetry(cfg.Geo.Retries, cfg.Geo.RetryBackoff),
	)

	// the worker outlives the signal context so in-flight clicks finish
	// during shutdown; it is subscribed before the server takes traffic
	workerDone, err := clicks.Start(context.WithoutCancel(ctx), svc.RecordClick)
	if err != nil {
		_ = clicks.Close()
		return fmt.Errorf("start click worker: %w", err)
	}

	var opts httpadapter.Options
	if cfg.IsDevelopment() {
		opts.DevIP = cfg.Geo.DevIP
	}
	handler := httpadapter.NewHandler(svc, upload.NewSigner(cfg.Upload), auth, opts, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-serveErr:
	case runErr = <-workerDone:
		runErr = fmt.Errorf("click worker stopped: %w", runErr)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if err := clicks.Close(); err != nil {
		logger.Error("click queue close error", slog.Any("error", err))
	}
	return runErr
}
