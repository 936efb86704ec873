package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/zopudigital/content-service/internal/catalog"
	"github.com/zopudigital/content-service/internal/cms"
	"github.com/zopudigital/content-service/internal/config"
	"github.com/zopudigital/content-service/internal/publisher"
	"github.com/zopudigital/content-service/internal/rest"
	"github.com/zopudigital/content-service/internal/scheduler"
	"github.com/zopudigital/content-service/internal/service"
	"github.com/zopudigital/content-service/internal/source/youtube"
	"github.com/zopudigital/content-service/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
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

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

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

	leadStore := postgres.NewLeadStore(db)
	txManager := postgres.NewTransactionManager(db)

	cmsClient := cms.NewClient(cms.Config{
		BaseURL:    cfg.CMS.BaseURL,
		Dataset:    cfg.CMS.Dataset,
		APIVersion: cfg.CMS.APIVersion,
		Token:      cfg.CMS.Token,
		Timeout:    cfg.CMS.Timeout,
	})

	videoSource := youtube.New(youtube.Config{
		FeedBaseURL:   cfg.YouTube.FeedBaseURL,
		APIBaseURL:    cfg.YouTube.APIBaseURL,
		OEmbedBaseURL: cfg.YouTube.OEmbedBaseURL,
		APIKey:        cfg.YouTube.APIKey,
		Timeout:       cfg.YouTube.Timeout,
		Revalidate:    cfg.YouTube.Revalidate,
	}, logger)

	library := catalog.New(videoSource, catalog.Config{
		PodcastPlaylistID: cfg.Catalog.PodcastPlaylistID,
		WebinarVideoIDs:   cfg.Catalog.WebinarVideoIDs,
	}, logger)

	contentService := service.NewContentService(cmsClient, logger)
	leadService := service.NewLeadService(leadStore, txManager, rabbitMQ, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := scheduler.NewRefresher(library, cfg.Catalog.RefreshInterval, logger)
	go func() {
		if err := refresher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("catalog refresher error", "error", err)
		}
	}()

	router := rest.NewRouter(contentService, library, leadService, cfg.Server.BaseURL, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("starting content service", "port", cfg.Server.Port, "base_url", cfg.Server.BaseURL)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
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
