package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/showcase-ms-go/internal/config"
	"github.com/fhuszti/showcase-ms-go/internal/db"
	workerHandler "github.com/fhuszti/showcase-ms-go/internal/handler/worker"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/optimiser"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
	"github.com/fhuszti/showcase-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/showcase-ms-go/internal/storage"
	"github.com/fhuszti/showcase-ms-go/internal/task"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/gallery"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)

	strg := initStorage(cfg)
	initBuckets(strg, cfg.Buckets())

	repo := mariadb.NewMediaRepository(database.DB)
	fo := optimiser.NewOptimiser(optimiser.NewWebPEncoder(), optimiser.NewPDFOptimizer())
	optimiseSvc := gallery.NewMediaOptimiser(repo, fo, strg)
	verifier := querycatalog.NewVerifier(mariadb.NewIndexInspector(database.DB, cfg.IndexConsoleURL), nil)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeOptimiseMedia, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseOptimiseMediaPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.OptimiseMediaHandler(ctx, p, optimiseSvc)
	})
	mux.HandleFunc(task.TypeVerifyIndexes, func(ctx context.Context, _ *asynq.Task) error {
		return workerHandler.VerifyIndexesHandler(ctx, verifier)
	})

	scheduler, err := task.NewScheduler(cfg.RedisAddr, cfg.RedisPassword, cfg.VerifyIndexesCron)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to build scheduler: %v", err)
		os.Exit(1)
	}

	runWorker(ctx, mux, scheduler, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(db.Config{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(context.Background(), "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, scheduler *asynq.Scheduler, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	if err := scheduler.Start(); err != nil {
		logger.Errorf(ctx, "❌  Scheduler failed: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "🚀 Worker started, index verification scheduled on %q", cfg.VerifyIndexesCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	scheduler.Shutdown()

	// give in-flight tasks up to 30 sec
	done := make(chan struct{})
	go func() {
		srv.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		logger.Warn(ctx, "⚠️  Worker shutdown timed out")
	}

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
