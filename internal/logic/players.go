package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/rosterboard/roster-api/internal/models"
)

const playerReturning = "id, first_name, last_name, position, jersey_number, status, " +
	"age, height_in, weight_lb, experience_years, college, headshot_url, created_at, updated_at"

type playerService struct {
	pg PgPool
}

func NewPlayerService(pg PgPool) PlayerService {
	return &playerService{pg: pg}
}

func (s *playerService) List(ctx context.Context, q PlayerListQuery) (*models.PlayerPage, error) {
	page := models.NewPagination(q.Page, q.Limit, 0)
	q.Page, q.Limit = page.CurrentPage, page.PerPage
	listStmt := BuildPlayerListQuery(q)
	countStmt := BuildPlayerCountQuery(q)

	players := make([]models.Player, 0, page.PerPage)
	var total int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.pg.QueryRow(gctx, countStmt.SQL, countStmt.Args...).Scan(&total); err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		rows, err := s.pg.Query(gctx, listStmt.SQL, listStmt.Args...)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanPlayer(rows)
			if err != nil {
				return fmt.Errorf("scan player: %w", err)
			}
			players = append(players, *p)
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Total = total
	return &models.PlayerPage{Players: players, Pagination: page}, nil
}

func (s *playerService) Get(ctx context.Context, id int64) (*models.Player, error) {
	p, err := scanPlayer(s.pg.QueryRow(ctx, "SELECT "+playerReturning+" FROM players WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player %d: %w", id, err)
	}
	return p, nil
}

func (s *playerService) Create(ctx context.Context, in *models.PlayerInput) (*models.Player, error) {
	if in.JerseyNumber != nil {
		if err := s.checkJersey(ctx, *in.JerseyNumber, 0); err != nil {
			return nil, err
		}
	}

	values := in.Values()
	cols := make([]string, 0, len(values))
	b := &sqlBuilder{}
	placeholders := make([]string, 0, len(values))
	for _, v := range values {
		cols = append(cols, v.Column)
		placeholders = append(placeholders, b.bind(v.Value))
	}

	sql := fmt.Sprintf("INSERT INTO players (%s) VALUES (%s) RETURNING %s",
		strings.Join(cols, ", "), strings.Join(placeholders, ", "), playerReturning)

	p, err := scanPlayer(s.pg.QueryRow(ctx, sql, b.args...))
	if err != nil {
		return nil, fmt.Errorf("create player: %w", translatePgError(err))
	}
	return p, nil
}

// Update applies only the supplied fields. An empty payload returns the
// player unchanged.
func (s *playerService) Update(ctx context.Context, id int64, in *models.PlayerInput) (*models.Player, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	values := in.Values()
	if len(values) == 0 {
		return current, nil
	}

	if in.JerseyNumber != nil {
		if err := s.checkJersey(ctx, *in.JerseyNumber, id); err != nil {
			return nil, err
		}
	}

	b := &sqlBuilder{}
	sets := make([]string, 0, len(values)+1)
	for _, v := range values {
		sets = append(sets, v.Column+" = "+b.bind(v.Value))
	}
	sets = append(sets, "updated_at = NOW()")

	sql := fmt.Sprintf("UPDATE players SET %s WHERE id = %s RETURNING %s",
		strings.Join(sets, ", "), b.bind(id), playerReturning)

	p, err := scanPlayer(s.pg.QueryRow(ctx, sql, b.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update player %d: %w", id, translatePgError(err))
	}
	return p, nil
}

// Delete removes the player; player_stats rows go with it (ON DELETE CASCADE).
func (s *playerService) Delete(ctx context.Context, id int64) error {
	tag, err := s.pg.Exec(ctx, "DELETE FROM players WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete player %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// checkJersey rejects a number held by any player other than exceptID.
func (s *playerService) checkJersey(ctx context.Context, number int, exceptID int64) error {
	var taken bool
	err := s.pg.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM players WHERE jersey_number = $1 AND id <> $2)",
		number, exceptID).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check jersey %d: %w", number, err)
	}
	if taken {
		return jerseyTakenError()
	}
	return nil
}

func scanPlayer(row pgx.Row) (*models.Player, error) {
	var p models.Player
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Position, &p.JerseyNumber, &p.Status,
		&p.Age, &p.HeightIn, &p.WeightLb, &p.ExperienceYears, &p.College, &p.HeadshotURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.PlayerID = p.ID
	return &p, nil
}
