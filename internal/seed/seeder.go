package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DB is satisfied by pgx.Tx and *pgxpool.Pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Options struct {
	Games         int
	Seasons       int
	LastSeason    int
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Summary reports what a run wrote.
type Summary struct {
	Players int
	Games   int64
	Stats   int64
}

type Seeder struct {
	db     DB
	logger *zap.SugaredLogger
	rng    *rand.Rand
	now    func() time.Time
	roster []RosterEntry
	cost   int
}

// New returns a Seeder. The same seed yields the same games and stats.
func New(db DB, roster []RosterEntry, seed uint64, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.Sugar(),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:    time.Now,
		roster: roster,
		cost:   bcrypt.DefaultCost,
	}
}

// Run seeds players, the admin user, games and stats in that order.
// Games and stats are replaced; players and the admin are upserted.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	sum := &Summary{}

	players, err := s.upsertPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sum.Players = len(players)
	s.logger.Infow("Players seeded", "count", sum.Players)

	if err := s.upsertAdmin(ctx, opts); err != nil {
		return nil, err
	}
	s.logger.Infow("Admin user seeded", "email", opts.AdminEmail)

	n, err := s.replaceGames(ctx, opts.Games)
	if err != nil {
		return nil, err
	}
	sum.Games = n
	s.logger.Infow("Games seeded", "count", n)

	n, err = s.replaceStats(ctx, players, SeasonSpan(opts.LastSeason, opts.Seasons), opts.LastSeason)
	if err != nil {
		return nil, err
	}
	sum.Stats = n
	s.logger.Infow("Player stats seeded", "count", n, "seasons", opts.Seasons)

	return sum, nil
}

type playerRef struct {
	id       int64
	position string
}

func (s *Seeder) upsertPlayers(ctx context.Context) ([]playerRef, error) {
	const q = `INSERT INTO players (first_name, last_name, jersey_number, position, status, age, height_in, weight_lb, experience_years, college)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (jersey_number) DO UPDATE SET
	first_name = EXCLUDED.first_name,
	last_name = EXCLUDED.last_name,
	position = EXCLUDED.position,
	status = EXCLUDED.status,
	age = EXCLUDED.age,
	height_in = EXCLUDED.height_in,
	weight_lb = EXCLUDED.weight_lb,
	experience_years = EXCLUDED.experience_years,
	college = EXCLUDED.college,
	updated_at = NOW()
RETURNING id`

	refs := make([]playerRef, 0, len(s.roster))
	for _, e := range s.roster {
		ref := playerRef{position: e.Position}
		err := s.db.QueryRow(ctx, q,
			e.FirstName, e.LastName, e.JerseyNumber, e.Position, e.Status,
			e.Age, e.HeightIn, e.WeightLb, e.ExperienceYears, e.College).Scan(&ref.id)
		if err != nil {
			return nil, fmt.Errorf("upsert player #%d: %w", e.JerseyNumber, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (s *Seeder) upsertAdmin(ctx context.Context, opts Options) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), s.cost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = s.db.Exec(ctx, `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
ON CONFLICT ((LOWER(email))) DO UPDATE SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, updated_at = NOW()`,
		opts.AdminName, opts.AdminEmail, string(hash))
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}

var gameColumns = []string{
	"season", "game_date", "location", "opponent", "opponent_city", "opponent_name",
	"score_for", "score_against", "result", "stadium", "venue", "logo_url",
}

func (s *Seeder) replaceGames(ctx context.Context, n int) (int64, error) {
	if _, err := s.db.Exec(ctx, "TRUNCATE games RESTART IDENTITY"); err != nil {
		return 0, fmt.Errorf("truncate games: %w", err)
	}

	games := GenerateGames(s.rng, n, s.now())
	rows := make([][]any, 0, len(games))
	for _, g := range games {
		rows = append(rows, []any{
			g.Season, g.GameDate, g.Location, g.Opponent, g.OpponentCity, g.OpponentName,
			g.ScoreFor, g.ScoreAgainst, g.Result, g.Stadium, g.Venue, g.LogoURL,
		})
	}

	copied, err := s.db.CopyFrom(ctx, pgx.Identifier{"games"}, gameColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy games: %w", err)
	}
	return copied, nil
}

var statColumns = []string{"player_id", "season", "games_played", "touchdowns", "yards", "tackles"}

// replaceStats regenerates stats for the seeded players only. Players
// added through the API keep no stats after a reseed.
func (s *Seeder) replaceStats(ctx context.Context, players []playerRef, first, last int) (int64, error) {
	if _, err := s.db.Exec(ctx, "TRUNCATE player_stats RESTART IDENTITY"); err != nil {
		return 0, fmt.Errorf("truncate player_stats: %w", err)
	}

	var lines [][]any
	for season := first; season <= last; season++ {
		for _, p := range players {
			l := SeasonLine(s.rng, p.id, p.position, season)
			lines = append(lines, []any{l.PlayerID, l.Season, l.GamesPlayed, l.Touchdowns, l.Yards, l.Tackles})
		}
	}

	copied, err := s.db.CopyFrom(ctx, pgx.Identifier{"player_stats"}, statColumns, pgx.CopyFromRows(lines))
	if err != nil {
		return 0, fmt.Errorf("copy player_stats: %w", err)
	}
	return copied, nil
}
