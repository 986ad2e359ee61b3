package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medilog/medilog-api/internal/api"
	"github.com/medilog/medilog-api/internal/auth"
	"github.com/medilog/medilog-api/internal/infrastructure/db/mongo"
	"github.com/medilog/medilog-api/internal/infrastructure/db/naming"
	"github.com/medilog/medilog-api/internal/infrastructure/db/redis"
	"github.com/medilog/medilog-api/internal/pkg/config"
	"github.com/medilog/medilog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	// Environment validation is fail-fast: a bad environment must abort
	// before the server accepts traffic.
	names := naming.NewResolver(naming.Config{
		Environment:      cfg.Database.Environment,
		Separator:        cfg.Database.Separator,
		EnableSeparation: cfg.Database.EnableSeparation,
		ActiveProfiles:   cfg.Database.ActiveProfiles,
	})
	if cfg.Database.ValidateOnStartup {
		if err := names.Validate(); err != nil {
			log.Fatal().Err(err).Msg("environment configuration invalid")
		}
	}
	log.Info().
		Str("environment", names.Environment()).
		Str("table_prefix", names.Prefix()).
		Bool("separation_enabled", cfg.Database.EnableSeparation).
		Msg("environment configuration validated")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}
	codec := auth.NewCodec(cfg.JWT.Secret, cfg.JWT.TTL)

	ctx := context.Background()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongo.EnsureIndexes(ctx, db, names); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, codec, names, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
