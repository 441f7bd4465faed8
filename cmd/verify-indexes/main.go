package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fhuszti/showcase-ms-go/internal/config"
	"github.com/fhuszti/showcase-ms-go/internal/db"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
	"github.com/fhuszti/showcase-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/showcase-ms-go/internal/task"
)

// errCatalogNotReady makes the process exit non-zero once the report is printed.
var errCatalogNotReady = errors.New("composite query catalog is not ready")

type options struct {
	enqueue bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "verify-indexes",
		Short: "Check that every composite listing query is backed by an index",
		Long: `Runs each catalogued listing query against MariaDB and reports whether a
matching composite index exists. Missing indexes are reported together with
the CREATE INDEX statement and a console link to create them.

With --enqueue the check is handed to the worker instead of running inline.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.enqueue, "enqueue", false, "enqueue the check on the worker queue instead of running it here")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if opts.enqueue {
		if cfg.RedisAddr == "" {
			return errors.New("REDIS_ADDR must be set to enqueue the check")
		}
		d := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		defer d.Close()
		if err := d.EnqueueVerifyIndexes(ctx); err != nil {
			return fmt.Errorf("could not enqueue index verification: %w", err)
		}
		logger.Info(ctx, "✅  Index verification enqueued")
		return nil
	}

	database, err := db.New(db.Config{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("could not connect to db: %w", err)
	}
	defer database.Close()

	verifier := querycatalog.NewVerifier(mariadb.NewIndexInspector(database.DB, cfg.IndexConsoleURL), nil)
	report := verifier.Verify(ctx)
	if err := report.Print(cmd.OutOrStdout()); err != nil {
		return err
	}
	if !report.OK() {
		return errCatalogNotReady
	}
	return nil
}
