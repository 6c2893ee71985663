package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/metrics"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Postgres Pinger
	// Redis is optional; throttling is disabled without it.
	Redis   logic.RedisClient
	Logger  *zap.Logger
	Metrics metrics.Recorder
	// Services
	Leaderboard logic.LeaderboardService
	Players     logic.PlayerService
	Games       logic.GameService
	Auth        logic.AuthService
	// Now defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	pg          Pinger
	redis       logic.RedisClient
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	metrics     metrics.Recorder
	leaderboard logic.LeaderboardService
	players     logic.PlayerService
	games       logic.GameService
	auth        logic.AuthService
	now         func() time.Time
}

func New(cfg Config) *Handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		pg:          cfg.Postgres,
		redis:       cfg.Redis,
		logger:      logger.Sugar(),
		validator:   newValidator(now),
		metrics:     rec,
		leaderboard: cfg.Leaderboard,
		players:     cfg.Players,
		games:       cfg.Games,
		auth:        cfg.Auth,
		now:         now,
	}
}
