package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/segurosmx/cotizador/internal/backend"
	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/config"
	"github.com/segurosmx/cotizador/internal/quoting"
	"github.com/segurosmx/cotizador/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the quoting HTTP API",
		Long: `serve exposes the quoting engine over HTTP. Settings come from the
environment (a .env file is loaded when present): PORT, GIN_MODE,
REQUEST_TIMEOUT, LOG_LEVEL, BACKEND_URL, BACKEND_TOKEN, BACKEND_TIMEOUT,
BACKEND_RETRIES, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB and CACHE_TTL.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadServerConfig()
			logger, err := newServerLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg, logger)
		},
	}
}

func runServer(ctx context.Context, cfg config.ServerConfig, logger *zap.Logger) error {
	sugar := logger.Sugar()
	gin.SetMode(cfg.GinMode)

	client := backend.NewClient(cfg.Backend)
	var ajustes quoting.AjusteCPSource = client
	if cfg.Redis.Addr != "" {
		rdb, err := connectRedis(cfg.Redis)
		if err != nil {
			logger.Warn("postal-code cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			defer rdb.Close()
			ajustes = backend.NewCachedAjusteCP(client, rdb, cfg.Redis.TTL, sugar)
			logger.Info("postal-code cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
		}
	}

	engine := calculation.NewQuoteEngine()
	engine.SetLogger(sugar)
	svc := quoting.NewService(client, ajustes, engine, sugar)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(svc, cfg.RequestTimeout, sugar),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("quoting API listening", zap.String("addr", srv.Addr), zap.String("backend", cfg.Backend.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}
