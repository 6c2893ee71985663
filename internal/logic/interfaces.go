package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/rosterboard/roster-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the subset of go-redis used for request throttling
type RedisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// LeaderboardService reads season leaderboards.
type LeaderboardService interface {
	List(ctx context.Context, q LeaderboardQuery) (*models.LeaderboardPage, error)
	// Export calls emit for each row in leaderboard order, up to ExportRowCap rows.
	Export(ctx context.Context, q LeaderboardQuery, emit func(models.LeaderboardRow) error) (int, error)
}

// PlayerService manages the roster.
type PlayerService interface {
	List(ctx context.Context, q PlayerListQuery) (*models.PlayerPage, error)
	Get(ctx context.Context, id int64) (*models.Player, error)
	Create(ctx context.Context, in *models.PlayerInput) (*models.Player, error)
	Update(ctx context.Context, id int64, in *models.PlayerInput) (*models.Player, error)
	Delete(ctx context.Context, id int64) error
}

// GameService reads the schedule.
type GameService interface {
	Recent(ctx context.Context, q GameQuery) ([]models.GameSummary, error)
}

// AuthService issues and resolves bearer tokens.
type AuthService interface {
	IssueToken(ctx context.Context, req models.TokenRequest) (string, error)
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
}
