package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tazhibayda/trade-service/docs"
	"github.com/tazhibayda/trade-service/internal/config"
	api "github.com/tazhibayda/trade-service/internal/http"
	"github.com/tazhibayda/trade-service/internal/log"
	"github.com/tazhibayda/trade-service/internal/metrics"
	"github.com/tazhibayda/trade-service/internal/queue"
	"github.com/tazhibayda/trade-service/internal/repo"
)

func main() {
	cfg := config.Load()

	logger, err := log.Init(os.Getenv("APP_ENV") == "production")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure indexes", zap.Error(err))
	}

	cache := repo.NewCache(cfg.RedisAddr, time.Duration(cfg.LatestCacheTTLn)*time.Second)
	if cache != nil {
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, latest-products cache disabled", zap.Error(err))
			cache.Close()
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	pub := queue.NewNoop()
	if cfg.RabbitURL != "" {
		rp, err := queue.NewRabbit(cfg.RabbitURL)
		if err != nil {
			logger.Warn("rabbit unavailable, events disabled", zap.Error(err))
		} else {
			pub = rp
			defer rp.Close()
		}
	}

	h := api.NewHandler(store, cache, cfg, pub)
	r := api.NewRouter(h)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	logger.Info("trade-service listening", zap.String("port", cfg.Port))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("signal received, shutting down", zap.String("signal", s.String()))
	case err := <-srvErr:
		logger.Error("server error", zap.Error(err))
	}
}
