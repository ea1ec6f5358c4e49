// Command server runs the crewdesk HTTP API.
//
// @title           Crewdesk API
// @version         1.0
// @description     Role-based project and task management API.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crewdesk/crewdesk-api/internal/api"
	"github.com/crewdesk/crewdesk-api/internal/infrastructure/config"
	mongodb "github.com/crewdesk/crewdesk-api/internal/infrastructure/db/mongo"
	redisdb "github.com/crewdesk/crewdesk-api/internal/infrastructure/db/redis"
	"github.com/crewdesk/crewdesk-api/internal/infrastructure/realtime"
	"github.com/crewdesk/crewdesk-api/pkg/logger"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	ensureIndexes(ctx, db, log)

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	taskCache := redisdb.NewTaskCache(rdb)
	feed := redisdb.NewChangeFeed(rdb)
	tokens := redisdb.NewTokenStore(rdb)

	// --- Realtime bridge ---
	bridge := realtime.NewBridge(feed.Subscribe(ctx, log), taskCache, log)
	bridge.Start(ctx)
	defer func() {
		if err := bridge.Close(); err != nil {
			log.Warn().Err(err).Msg("realtime bridge close failed")
		}
	}()

	// --- HTTP server ---
	e := api.NewRouter(api.RouterConfig{
		Mongo:     db,
		Redis:     rdb,
		TaskCache: taskCache,
		Feed:      feed,
		Tokens:    tokens,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("crewdesk api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// ensureIndexes creates collection indexes at startup. Failures are
// logged, not fatal: queries still work without indexes, just slower.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}
	for name, r := range map[string]indexer{
		"users":    mongodb.NewUserRepository(db),
		"profiles": mongodb.NewProfileRepository(db),
		"tasks":    mongodb.NewTaskRepository(db),
		"projects": mongodb.NewProjectRepository(db),
	} {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}
