package testutil

import (
	"context"
	"database/sql"

	"github.com/hibiken/asynq"

	workerHandler "github.com/fhuszti/showcase-ms-go/internal/handler/worker"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/optimiser"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
	"github.com/fhuszti/showcase-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/showcase-ms-go/internal/task"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/gallery"
)

// StartWorker starts an asynq worker serving every task type, wired the same
// way as cmd/worker. It returns a function to shut it down.
func StartWorker(dbConn *sql.DB, strg port.Storage, redisAddr string) func() {
	repo := mariadb.NewMediaRepository(dbConn)
	fo := optimiser.NewOptimiser(optimiser.NewWebPEncoder(), optimiser.NewPDFOptimizer())
	optimiseSvc := gallery.NewMediaOptimiser(repo, fo, strg)
	verifier := querycatalog.NewVerifier(mariadb.NewIndexInspector(dbConn, ""), nil)

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

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 5})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
