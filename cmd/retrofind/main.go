package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kitbuilder587/retrofind/internal/api"
	"github.com/kitbuilder587/retrofind/internal/config"
	"github.com/kitbuilder587/retrofind/internal/ebay"
	"github.com/kitbuilder587/retrofind/internal/engine"
	"github.com/kitbuilder587/retrofind/internal/metrics"
	"github.com/kitbuilder587/retrofind/internal/ratelimit"
)

func main() {
	// .env опционален, в проде конфиг приходит из окружения
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting retrofind",
		zap.String("ebay_env", cfg.Ebay.Env),
		zap.String("marketplace", cfg.Ebay.MarketplaceID),
		zap.String("http_port", cfg.HTTP.Port),
	)

	m := metrics.New()

	browse := ebay.New(ebay.Config{
		ClientID:      cfg.Ebay.ClientID,
		ClientSecret:  cfg.Ebay.ClientSecret,
		BaseURL:       cfg.Ebay.BaseURL,
		MarketplaceID: cfg.Ebay.MarketplaceID,
		Timeout:       cfg.Ebay.Timeout,
	}, logger)

	svc := engine.NewService(engine.Deps{
		Browse:  browse,
		Logger:  logger,
		Metrics: m,
		Config: engine.Config{
			SearchTimeout: cfg.Engine.SearchTimeout,
		},
	})

	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
	})

	server := api.NewServer(cfg.HTTP.Port, api.ServerDeps{
		Handler: api.NewSearchHandler(svc, logger),
		Limiter: limiter,
		Metrics: m,
		Logger:  logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
