package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"stockledger/internal/console"
	"stockledger/internal/inventory"
	"stockledger/pkg/config"
	"stockledger/pkg/db"
	"stockledger/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "stockledger"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	driver := flag.String("driver", "", "database driver, sqlite or postgres (overrides "+config.EnvDBDriver+")")
	dbPath := flag.String("db", "", "sqlite database file (overrides "+config.EnvDBPath+")")
	dsn := flag.String("dsn", "", "postgres connection string (overrides "+config.EnvDBDSN+")")
	logLevel := flag.String("log-level", "", "log level (overrides "+config.EnvLogLevel+")")
	flag.Parse()

	// Flags feed the same environment keys config.Load reads, so overrides
	// go through the exact validation the env path does.
	if *driver != "" {
		os.Setenv(config.EnvDBDriver, *driver)
	}
	if *dbPath != "" {
		os.Setenv(config.EnvDBPath, *dbPath)
	}
	if *dsn != "" {
		os.Setenv(config.EnvDBDSN, *dsn)
	}
	if *logLevel != "" {
		os.Setenv(config.EnvLogLevel, *logLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "stockledger",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	svc, err := inventory.NewService(inventory.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	runner, err := console.New(svc, logg, os.Stdin, os.Stdout)
	if err != nil {
		logg.Error(context.Background(), "failed to create console runner", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":    cfg.App.Env,
		"driver": cfg.DB.Driver,
	})
	logg.Info(ctx, "starting stock ledger console")

	if err := runner.Run(ctx); err != nil {
		logg.Error(ctx, "console session failed", err)
		os.Exit(1)
	}
}
