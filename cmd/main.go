package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hvac_fixtures/internal/config"
	"hvac_fixtures/internal/handlers"
	"hvac_fixtures/internal/logger"
	"hvac_fixtures/internal/repository"
	"hvac_fixtures/internal/repository/db"
	"hvac_fixtures/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := handlers.NewHandler(config.NewViper(), bootstrap)
	defer func() {
		if err := h.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close:", err)
		}
	}()

	if err := h.InitCommands().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// bootstrap wires logger, history database, repositories and services.
func bootstrap(cfg *config.Config) (*service.Service, *logger.Logger, func() error, error) {
	log := logger.Get(cfg.LogLevel, cfg.LogFormat)

	historyDB, err := openHistory(cfg.HistoryPath, log)
	if err != nil {
		return nil, nil, nil, err
	}

	repos := repository.NewRepository(historyDB, cfg.OutputDir)
	services := service.NewService(repos, log)

	release := func() error {
		_ = log.Sync()
		if historyDB == nil {
			return nil
		}
		return historyDB.Close()
	}
	return services, log, release, nil
}

// openHistory initializes the SQLite history database. An empty path disables
// history and returns a nil handle.
func openHistory(path string, log *logger.Logger) (*sql.DB, error) {
	if path == "" {
		log.Debugw("history.path not set; generation history disabled")
		return nil, nil
	}
	historyDB, err := db.InitDB(path)
	if err != nil {
		return nil, fmt.Errorf("init history database: %w", err)
	}
	log.Debugw("history database ready", "path", path)
	return historyDB, nil
}
