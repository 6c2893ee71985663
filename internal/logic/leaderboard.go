package logic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/rosterboard/roster-api/internal/models"
)

type leaderboardService struct {
	pg PgPool
}

func NewLeaderboardService(pg PgPool) LeaderboardService {
	return &leaderboardService{pg: pg}
}

// List fetches one page and the total match count concurrently.
func (s *leaderboardService) List(ctx context.Context, q LeaderboardQuery) (*models.LeaderboardPage, error) {
	page := models.NewPagination(q.Page, q.Limit, 0)
	rowsStmt := BuildLeaderboardQuery(q, page.PerPage, page.Offset())
	countStmt := BuildLeaderboardCountQuery(q)

	rows := make([]models.LeaderboardRow, 0, page.PerPage)
	var total int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.pg.QueryRow(gctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
			return fmt.Errorf("count leaderboard: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return s.stream(gctx, rowsStmt, q.Season, page.Offset(), 0, func(row models.LeaderboardRow) error {
			rows = append(rows, row)
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Total = total
	return &models.LeaderboardPage{Rows: rows, Pagination: page}, nil
}

// Export streams rows to emit without materialising the result set.
func (s *leaderboardService) Export(ctx context.Context, q LeaderboardQuery, emit func(models.LeaderboardRow) error) (int, error) {
	n := 0
	err := s.stream(ctx, BuildLeaderboardQuery(q, ExportRowCap, 0), q.Season, 0, ExportRowCap, func(row models.LeaderboardRow) error {
		n++
		return emit(row)
	})
	return n, err
}

// stream scans rows one at a time. A positive maxRows stops reading after that
// many rows even if the statement returned more.
func (s *leaderboardService) stream(ctx context.Context, st Statement, season, offset, maxRows int, fn func(models.LeaderboardRow) error) error {
	rows, err := s.pg.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		return fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		if maxRows > 0 && n >= maxRows {
			break
		}
		row, err := scanLeaderboardRow(rows)
		if err != nil {
			return fmt.Errorf("scan leaderboard row: %w", err)
		}
		n++
		row.Season = season
		row.Rank = offset + n
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

func scanLeaderboardRow(rows pgx.Rows) (models.LeaderboardRow, error) {
	var r models.LeaderboardRow
	err := rows.Scan(
		&r.PlayerID, &r.FirstName, &r.LastName, &r.Position, &r.JerseyNumber, &r.Status,
		&r.Age, &r.HeightIn, &r.WeightLb, &r.ExperienceYears, &r.College, &r.HeadshotURL,
		&r.GamesPlayed, &r.Touchdowns, &r.Yards, &r.Tackles,
	)
	r.ID = r.PlayerID
	return r, err
}
