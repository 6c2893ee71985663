// Command seeder loads the bundled roster, an admin user, a generated
// schedule and generated season stats into Postgres. It runs in a single
// transaction; games and stats are replaced on every run.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rosterboard/roster-api/internal/config"
	"github.com/rosterboard/roster-api/internal/seed"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.LoadSeed(time.Now())
	if err != nil {
		sugar.Fatalw("Failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		sugar.Fatalw("Failed to connect to Postgres", "error", err)
	}
	defer pool.Close()

	roster, err := seed.DefaultRoster()
	if err != nil {
		sugar.Fatalw("Failed to parse roster", "error", err)
	}

	randomSeed := cfg.RandomSeed
	if randomSeed == 0 {
		randomSeed = uint64(time.Now().UnixNano())
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		sugar.Fatalw("Failed to begin transaction", "error", err)
	}
	defer tx.Rollback(context.Background())

	summary, err := seed.New(tx, roster, randomSeed, logger).Run(ctx, seed.Options{
		Games:         cfg.Games,
		Seasons:       cfg.Seasons,
		LastSeason:    cfg.LastSeason,
		AdminName:     cfg.AdminName,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		sugar.Fatalw("Seeding failed", "error", err)
	}
	if err := tx.Commit(ctx); err != nil {
		sugar.Fatalw("Failed to commit seed data", "error", err)
	}

	sugar.Infow("Seed complete",
		"players", summary.Players,
		"games", summary.Games,
		"stats", summary.Stats,
		"random_seed", randomSeed,
	)
}
