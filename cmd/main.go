package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mesa-promote/internal/adapter/gateway"
	httpadapter "mesa-promote/internal/adapter/http"
	kafkaadapter "mesa-promote/internal/adapter/kafka"
	"mesa-promote/internal/adapter/memory"
	"mesa-promote/internal/adapter/postgres"
	redisadapter "mesa-promote/internal/adapter/redis"
	"mesa-promote/internal/adapter/usecase"
	"mesa-promote/internal/config"
	"mesa-promote/internal/core/calendar"
	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
	"mesa-promote/internal/db"
)

// main loads configuration, optionally migrates the database, wires the
// promotion engine onto postgres, redis, kafka and the payment gateway, then
// runs the HTTP server, the hourly pass and the update-queue consumer until
// a termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("promoter stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("promoter gracefully stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	cal := calendar.New(cfg.Promo.TimezoneOffset, nil)
	if cfg.Env == "dev" {
		if err = db.Seed(ctx, pool, cal.Today()); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("dev data seeded")
	}

	store := postgres.NewCampaignStore(pool)
	traffic := postgres.NewTraffic(pool)
	payments := gateway.NewClient(cfg.Gateway.URL, cfg.Gateway.Timeout, cfg.Gateway.TestMode)

	var (
		live   port.LiveSetStore
		health port.HealthSignal
		locker port.LinkLocker
	)
	if cfg.Redis.Enabled() {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		live = redisadapter.NewLiveSetStore(rdb)
		health = redisadapter.NewHealthSignal(rdb)
		locker = redisadapter.NewLinkLocker(rdb, cfg.Promo.LockTTL, logger)
	} else {
		logger.Warn("redis not configured, live sets and link locks are local to this process")
		live = memory.NewLiveSetStore()
		health = memory.NewHealthSignal()
		locker = memory.NewLinkLocker()
	}
	locker = usecase.NewBoundedLocker(locker, cfg.Promo.LockWait)

	var (
		queue    port.Queue
		notifier port.Notifier
		memQueue *memory.Queue
	)
	if cfg.Kafka.Enabled() {
		updates := kafkaadapter.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.UpdateTopic)
		defer updates.Close()
		notices := kafkaadapter.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.NotifyTopic)
		defer notices.Close()
		queue = kafkaadapter.NewQueue(updates)
		notifier = kafkaadapter.NewNotifier(notices)
	} else {
		logger.Warn("kafka not configured, update queue runs in process")
		memQueue = memory.NewQueue(64, logger)
		queue = memQueue
		notifier = memory.NewLogNotifier(logger)
	}

	scheduler := usecase.NewScheduler(store, payments, logger)
	billing := usecase.NewBilling(store, payments, traffic, notifier, locker, scheduler, cal, logger)
	publisher := usecase.NewPublisher(store, live, logger)
	orchestrator := usecase.NewOrchestrator(store, live, health, notifier, locker, scheduler, billing, publisher, cal, logger)
	promotions := usecase.NewPromotions(store, live, queue, notifier, locker, scheduler, billing, cal, logger)
	selector := usecase.NewAdSelector(live, health, queue, cal, cfg.Promo.LotterySize)
	queueHandler := usecase.NewQueueHandler(orchestrator, store, logger)

	handler := httpadapter.NewHandler(selector, promotions, promotions, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		return nil
	})
	g.Go(func() error {
		runPeriodically(gctx, orchestrator, cfg.Promo.RunInterval, logger)
		return nil
	})
	if memQueue != nil {
		g.Go(func() error { return memQueue.Run(gctx, queueHandler) })
	} else {
		reader := kafkaadapter.NewReader(cfg.Kafka.Brokers, cfg.Kafka.UpdateTopic, cfg.Kafka.GroupID)
		consumer := kafkaadapter.NewConsumer(reader, queueHandler, logger.With(slog.String("topic", cfg.Kafka.UpdateTopic)))
		defer consumer.Close()
		g.Go(func() error { return consumer.Run(gctx) })
	}

	return g.Wait()
}

// runPeriodically runs the daily pass once at startup and then every
// interval. A zero interval leaves runs to the update queue.
func runPeriodically(ctx context.Context, runner usecase.Runner, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	pass := func() {
		report, err := runner.Run(ctx, usecase.RunOptions{})
		if err != nil {
			logger.Error("daily pass failed", slog.Any("error", err))
			return
		}
		logger.Info("daily pass finished",
			slog.String("day", report.Day.Format(domain.DateLayout)),
			slog.Int("scheduled", report.Scheduled),
			slog.Int("charges", len(report.Charges)),
			slog.Int("finished", len(report.Finished)))
	}

	pass()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pass()
		}
	}
}
