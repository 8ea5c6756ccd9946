package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aitbekov/tirlik/internal/app"
	"github.com/aitbekov/tirlik/internal/config"
	"github.com/aitbekov/tirlik/internal/database"
	"github.com/aitbekov/tirlik/internal/logging"
)

// Env is the shared command environment: config, database, and services.
type Env struct {
	Config *config.Config
	App    *app.App

	db *sql.DB
}

// openEnv loads config, initializes logging and the database, and builds the
// application container. Callers must Close it.
func openEnv(ctx context.Context) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.LogPath(), cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{
		Config: cfg,
		App:    app.New(database.NewRepository(db)),
		db:     db,
	}, nil
}

// Close releases the environment's resources.
func (e *Env) Close() {
	if err := e.db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
