// @title Roster Leaderboard API
// @version 1.0
// @description Season leaderboards, roster management and schedule for a football team.
// @BasePath /
// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/rosterboard/roster-api/docs"
	"github.com/rosterboard/roster-api/internal/config"
	"github.com/rosterboard/roster-api/internal/handlers"
	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/metrics"
	"github.com/rosterboard/roster-api/internal/worker"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sugar := logger.Sugar()

	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("parse POSTGRES_URL: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.DBMaxConns)
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		sugar.Warnw("PostgreSQL not reachable at startup", "error", err)
	}

	var rdb logic.RedisClient
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()
		rdb = client
	} else {
		sugar.Warn("REDIS_URL not set, request throttling disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	touches := worker.NewPool(worker.PoolConfig{
		Postgres:   pool,
		Logger:     logger,
		Registerer: registry,
	})
	touches.Start(ctx)
	defer touches.Stop()

	h := handlers.New(handlers.Config{
		Postgres:    pool,
		Redis:       rdb,
		Logger:      logger,
		Metrics:     metrics.NewService(registry),
		Leaderboard: logic.NewLeaderboardService(pool),
		Players:     logic.NewPlayerService(pool),
		Games:       logic.NewGameService(pool),
		Auth:        logic.NewAuthService(pool, touches, logger),
	})

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: handlers.NewRouter(h, handlers.RouterOptions{
			AllowedOrigins:  cfg.AllowedOrigins,
			AuthRateLimit:   cfg.AuthRateLimit,
			APIRateLimit:    cfg.APIRateLimit,
			RateLimitWindow: cfg.RateLimitWindow,
			MetricsHandler:  metrics.NewMetricsHandler(registry),
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	sugar.Info("Server exited")
	return nil
}
