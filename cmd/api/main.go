package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodbridge/coordination-api/internal/api"
	"github.com/foodbridge/coordination-api/internal/infrastructure/calendar"
	"github.com/foodbridge/coordination-api/internal/infrastructure/config"
	mongodb "github.com/foodbridge/coordination-api/internal/infrastructure/db/mongo"
	redisdb "github.com/foodbridge/coordination-api/internal/infrastructure/db/redis"
	"github.com/foodbridge/coordination-api/internal/infrastructure/jobs"
	"github.com/foodbridge/coordination-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("disconnect mongodb")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis")
		}
	}()

	// --- Calendar mirror ---
	if cfg.Calendar.SyncEnabled() {
		source := calendar.NewClient(ctx, calendar.Config{
			BaseURL:      cfg.Calendar.BaseURL,
			CalendarID:   cfg.Calendar.CalendarID,
			ClientID:     cfg.Calendar.ClientID,
			ClientSecret: cfg.Calendar.ClientSecret,
			TokenURL:     cfg.Calendar.TokenURL,
		})
		syncer := jobs.NewCalendarSyncer(source, mongodb.NewCalendarRepository(db),
			cfg.Calendar.SyncInterval, logger.With("calendar-sync"))
		go syncer.Run(ctx)
	} else {
		log.Info().Msg("calendar sync disabled: missing calendar credentials")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewAvailabilityRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewCalendarRepository(db).EnsureIndexes(ctx)
}
