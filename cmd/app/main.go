package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"fitboard/internal/application/usecase"
	"fitboard/internal/config"
	"fitboard/internal/infrastructure/kv"
	"fitboard/internal/infrastructure/repository"
	"fitboard/internal/infrastructure/security"
	"fitboard/internal/middleware"
	handlers "fitboard/internal/transport/http"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	store := selectStore(cfg, logger)

	ledger := repository.NewScoreLedger(store, &logger)
	profiles := repository.NewProfileStore(store)
	exercises := repository.NewExerciseDirectory(store)

	submit := usecase.NewSubmitUseCase(ledger, profiles, exercises, &logger)
	leaderboard := usecase.NewLeaderboardUseCase(ledger, profiles, &logger)
	history := usecase.NewHistoryUseCase(ledger, exercises, &logger)

	router := handlers.NewRouter(handlers.RouterDeps{
		Scores:      handlers.NewScoreHandler(submit),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboard),
		History:     handlers.NewHistoryHandler(history),
		Exercises:   handlers.NewExerciseHandler(exercises),
		Tokens:      security.NewTokenManager(cfg.AccessSecret),
		Limiter:     middleware.NewRateLimiter(store),
		Admins:      cfg.Admins(),
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPPort).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

// selectStore connects to Redis when configured and reachable, otherwise
// degrades to the in-memory shim: the engine stays up for local development
// and demos, but nothing persists across restarts.
func selectStore(cfg config.Config, logger zerolog.Logger) kv.Store {
	if cfg.RedisAddr == "" {
		logger.Warn().Msg("REDIS_ADDR not set; using in-memory store, data will not persist")
		return kv.NewMemory()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; using in-memory store, data will not persist")
		return kv.NewMemory()
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	return kv.NewRedis(rdb)
}
