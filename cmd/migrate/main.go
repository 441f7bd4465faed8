package main

import (
	"context"
	"os"

	"github.com/fhuszti/showcase-ms-go/internal/config"
	"github.com/fhuszti/showcase-ms-go/internal/db"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadDatabase()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database, err := initDb(cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	if err := migration.MigrateUp(ctx, database.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Migrations applied successfully")
}

func initDb(cfg *config.Settings) (*db.Database, error) {
	return db.New(db.Config{
		DSN:             cfg.MariaDBDSN + "&multiStatements=true",
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}
