package main

import (
	"context"
	"database/sql"
	"fmt"
	"itinerary-planner/internal/adapters/repositories"
	"itinerary-planner/internal/config"
	"itinerary-planner/internal/platform/db"
	"itinerary-planner/internal/platform/logger"
	"log"
	"time"

	"go.uber.org/zap"
)

// dbtool creates the Postgres schema and loads the city seed file.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	lg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		lg.Fatal("open database failed", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", cfg.SeedPath)
	if err := initAndSeed(ctx, conn, seedPath, lg); err != nil {
		lg.Fatal("init and seed failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string, lg *zap.Logger) error {
	lg.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	lg.Info("schema ready")

	lg.Info("seeding database", zap.String("path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	lg.Info("seeding complete")

	return nil
}
