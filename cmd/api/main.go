package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/recipebook/recipe-api/internal/api"
	"github.com/recipebook/recipe-api/internal/api/handler"
	"github.com/recipebook/recipe-api/internal/core/service"
	"github.com/recipebook/recipe-api/internal/infrastructure/config"
	mongodb "github.com/recipebook/recipe-api/internal/infrastructure/db/mongo"
	redisdb "github.com/recipebook/recipe-api/internal/infrastructure/db/redis"
	"github.com/recipebook/recipe-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	recipeRepo := mongodb.NewRecipeRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := recipeRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create recipe indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Services ---
	userService := service.NewUserService(userRepo, cfg.BcryptCost, cfg.JWTSecret, cfg.TokenTTL)
	recipeService := service.NewRecipeService(recipeRepo, log)
	registerLimiter := redisdb.NewRateLimiter(rdb, "register", cfg.Register.RateLimit, cfg.Register.RateWindow)

	// stop is triggered by OS signals or the admin shutdown endpoint.
	stop := make(chan struct{})
	var stopOnce sync.Once
	requestStop := func() {
		stopOnce.Do(func() { close(stop) })
	}

	e := api.NewRouter(api.Dependencies{
		Users:           userService,
		Recipes:         recipeService,
		RegisterLimiter: registerLimiter,
		Health:          handler.NewHealthHandler(),
		Readiness:       handler.NewReadinessHandler(db, rdb),
		JWTSecret:       cfg.JWTSecret,
		Logger:          log,
		Shutdown:        requestStop,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			requestStop()
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("recipe api started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
	case <-stop:
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
