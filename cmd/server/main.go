package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clientdesk/portal/internal/api"
	"github.com/clientdesk/portal/internal/core/service"
	"github.com/clientdesk/portal/internal/infrastructure/config"
	mongodb "github.com/clientdesk/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/clientdesk/portal/internal/infrastructure/db/redis"
	"github.com/clientdesk/portal/internal/infrastructure/queue"
	"github.com/clientdesk/portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "portal",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)

	recorder := queue.NewRecorder(cfg.ActivityWorkers, activityService, log)
	recorder.Start()

	e := api.NewRouter(db, rdb, activityService, recorder, cfg.JWTSecret, cfg.TokenTTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	// The HTTP drain above may have recorded more activity entries; flush
	// them before exiting so the audit log survives deploys.
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDrain()
	if err := recorder.Stop(drainCtx); err != nil {
		log.Error().Err(err).Msg("activity queue drain incomplete")
	}
}

// ensureIndexes creates all collection indexes up front, most importantly the
// unique email indexes that make concurrent duplicate signups impossible.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAdminRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewMessageRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewActivityRepository(db).EnsureIndexes(ctx)
}
