package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/hifz-planner/internal/adapter/postgres"
	"github.com/heartmarshall/hifz-planner/internal/adapter/postgres/plan"
	"github.com/heartmarshall/hifz-planner/internal/adapter/provider/quran"
	"github.com/heartmarshall/hifz-planner/internal/auth"
	"github.com/heartmarshall/hifz-planner/internal/config"
	"github.com/heartmarshall/hifz-planner/internal/service/planner"
	"github.com/heartmarshall/hifz-planner/internal/transport/middleware"
	"github.com/heartmarshall/hifz-planner/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the planner and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	structure := quran.NewProvider(cfg.Quran, logger)
	svc := planner.NewService(logger, plan.New(pool), structure, postgres.NewTxManager(pool))

	// Page markers are static; load them in the background so the first
	// CreatePlan does not pay for it.
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, cfg.Quran.Timeout*2)
		defer cancel()
		if _, err := structure.PageMarkers(warmCtx); err != nil {
			logger.Warn("page marker warmup failed", slog.String("error", err.Error()))
		}
	}()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Plans: rest.NewPlanHandler(svc, logger),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "database", Critical: true, Check: pool.Ping},
			rest.HealthCheck{Name: "quran", Check: func(ctx context.Context) error {
				_, err := structure.PageMarkers(ctx)
				return err
			}},
		),
		Tokens:     auth.NewVerifier(cfg.Auth),
		Limiter:    limiter,
		CORS:       cfg.CORS,
		RatePerMin: cfg.Planner.RateLimitPerMinute,
		Logger:     logger,
	})

	return serve(ctx, logger, cfg.Server, handler)
}

// serve runs the HTTP server and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
