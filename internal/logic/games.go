package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/rosterboard/roster-api/internal/models"
)

const (
	DefaultGameLimit = 12
	MaxGameLimit     = 50
)

// GameQuery selects the most recent games, optionally for one season.
type GameQuery struct {
	Season *int
	Limit  int
}

func NewGameQuery(p models.GameListParams) GameQuery {
	q := GameQuery{Season: p.Season, Limit: DefaultGameLimit}
	if p.Limit != nil && *p.Limit > 0 {
		q.Limit = min(*p.Limit, MaxGameLimit)
	}
	return q
}

func BuildGameListQuery(q GameQuery) Statement {
	b := &sqlBuilder{}
	var sb strings.Builder
	sb.WriteString("SELECT id, season, game_date, location, opponent, opponent_city, opponent_name, " +
		"score_for, score_against, result, stadium, venue, logo_url FROM games")
	if q.Season != nil {
		sb.WriteString(" WHERE season = " + b.bind(*q.Season))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultGameLimit
	}
	sb.WriteString(" ORDER BY game_date DESC, id DESC LIMIT " + b.bind(limit))
	return Statement{SQL: sb.String(), Args: b.args}
}

type gameService struct {
	pg PgPool
}

func NewGameService(pg PgPool) GameService {
	return &gameService{pg: pg}
}

func (s *gameService) Recent(ctx context.Context, q GameQuery) ([]models.GameSummary, error) {
	st := BuildGameListQuery(q)
	rows, err := s.pg.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]models.GameSummary, 0, q.Limit)
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(
			&g.ID, &g.Season, &g.GameDate, &g.Location, &g.Opponent, &g.OpponentCity, &g.OpponentName,
			&g.ScoreFor, &g.ScoreAgainst, &g.Result, &g.Stadium, &g.Venue, &g.LogoURL,
		); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g.Summary())
	}
	return games, rows.Err()
}
