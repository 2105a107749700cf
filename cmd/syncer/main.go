package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"nprstory/internal/api"
	"nprstory/internal/config"
	"nprstory/internal/layout"
	"nprstory/internal/publisher"
	"nprstory/internal/scheduler"
	"nprstory/internal/service"
	"nprstory/internal/source/npr"
	"nprstory/internal/storage/postgres"
	"nprstory/internal/transcript"
	"nprstory/internal/transport"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run every saved query once and exit")
	pull := flag.String("pull", "", "pull one story by id or npr.org url and exit")
	publish := flag.Bool("publish", false, "publish the story pulled with -pull")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	if cfg.Database.Migrate {
		version, err := postgres.Migrate(db)
		if err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		logger.Info("database schema up to date", "version", version)
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	httpClient := transport.New(transport.Config{
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	storyAPI := npr.New(npr.Config{
		PullURL: cfg.API.PullURL,
		PushURL: cfg.API.PushURL,
		APIKey:  cfg.API.APIKey,
	}, httpClient, logger)

	postStore := postgres.NewPostStore(db)
	authorStore := postgres.NewAuthorStore(db)
	stores := service.Stores{
		Posts:      postStore,
		Categories: postgres.NewCategoryStore(db),
		Media:      postgres.NewMediaStore(db, cfg.Media.Dir),
		Authors:    authorStore,
		Coauthors:  authorStore,
		Tx:         postgres.NewTransactionManager(db),
	}

	renderer := layout.NewReconstructor(httpClient, layout.Options{
		UseFeatured: cfg.Ingest.UseFeatured,
		AssetsURL:   cfg.Ingest.AssetsURL,
		DateLayout:  cfg.Ingest.DateLayout,
	}, logger)

	keys := cfg.FieldMapping.Keys()
	hooks := service.Hooks{}

	ingestService := service.NewIngestService(
		stores,
		renderer,
		transcript.NewFetcher(httpClient, logger),
		httpClient,
		pub,
		hooks,
		service.IngestOptions{Ingest: cfg.Ingest, Queries: cfg.Queries, Keys: keys},
		logger,
	)
	pullService := service.NewPullService(storyAPI, ingestService, postgres.NewSyncStateStore(db), cfg.Queries, logger)
	pushService := service.NewPushService(storyAPI, postStore, hooks, cfg.API, keys, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case *pull != "":
		postID, err := pullService.PullStory(ctx, *pull, *publish)
		if err != nil {
			logger.Error("pull failed", "story", *pull, "error", err)
			os.Exit(1)
		}
		logger.Info("story pulled", "story", *pull, "post_id", postID)
		return
	case *once:
		if _, err := pullService.Sync(ctx); err != nil {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Admin.AccessKey == "" {
		logger.Error("admin.access_key must be set to serve the admin api")
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(pullService, cfg.Sync.Interval, logger)

	srv := api.NewServer(pullService, pushService, sched, cfg.Admin.AccessKey, logger).NewHTTPServer(cfg.Admin.Addr)
	go func() {
		logger.Info("admin api listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("admin api error", "error", err)
			stop()
		}
	}()

	logger.Info("starting npr story syncer",
		"queries", len(cfg.Queries),
		"interval", cfg.Sync.Interval,
		"publisher", cfg.RabbitMQ.Enabled,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin api shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
