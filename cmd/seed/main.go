// Command seed loads the restaurant's menu card into the database.
// Safe to run more than once; items already present are left alone.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"restaurantbooking/config"
	"restaurantbooking/internal/repository/postgres"
	"restaurantbooking/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	if cfg.Store == "memory" {
		logger.Error("seeding the in-memory store is pointless; it is lost on exit")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	res, err := seed.LoadMenu(ctx, postgres.NewMenuItemRepository(db), logger)
	if err != nil {
		logger.Error("menu load failed", "err", err, "created", res.Created)
		os.Exit(1)
	}
	logger.Info("menu loaded", "created", res.Created, "skipped", res.Skipped)
}
