package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"spkio/internal/config"
	"spkio/internal/domain"
	"spkio/internal/notifier"
	"spkio/internal/scheduler"
	"spkio/internal/service"
	"spkio/internal/source/agendaapi"
	"spkio/internal/state"
	"spkio/internal/storage/postgres"
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

	changeFeed, err := notifier.NewRabbitMQ(notifier.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer changeFeed.Close()

	markStore := postgres.NewInterestMarkStore(db)
	userStore := postgres.NewUserStore(db)

	source := agendaapi.New(agendaapi.Config{
		BaseURL:        cfg.API.BaseURL,
		APIKey:         cfg.API.APIKey,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	container := state.New()

	identityService := service.NewIdentityService(userStore, container, logger)
	refreshService := service.NewRefreshService(source, container, logger)
	interestService := service.NewInterestService(markStore, container, changeFeed, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	user, err := identityService.EnsureUser(ctx)
	if err != nil {
		logger.Error("failed to provision user", "error", err)
		os.Exit(1)
	}

	if err := interestService.Reload(ctx, user.ID); err != nil {
		logger.Error("failed to load interest set", "error", err)
		os.Exit(1)
	}

	// re-read-and-replace whenever the relation changes for this user
	go func() {
		err := changeFeed.Subscribe(ctx, func(change domain.InterestChange) {
			if change.UserID != user.ID {
				return
			}
			if err := interestService.Reload(ctx, user.ID); err != nil {
				logger.Error("failed to reload interest set", "error", err)
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("change feed subscription ended", "error", err)
		}
	}()

	sched := scheduler.NewScheduler(refreshService, cfg.Refresh.Interval, logger)

	logger.Info("starting agenda service",
		"user_id", user.ID,
		"interval", cfg.Refresh.Interval,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
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
