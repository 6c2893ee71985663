package logic

import (
	"math"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/rosterboard/roster-api/internal/models"
)

// leaderboardRow builds a scan row in leaderboardColumns order.
func leaderboardRow(id int64, first, last, pos string, jersey any, gp, td, yds, tkl int) []any {
	return []any{id, first, last, pos, jersey, "active", 25, 72, 210, 3, nil, nil, gp, td, yds, tkl}
}

func TestLeaderboardList(t *testing.T) {
	tests := []struct {
		name      string
		q         LeaderboardQuery
		data      [][]any
		total     int64
		wantNames []string
		wantRanks []int
		wantErr   bool
	}{
		{
			name: "touchdowns desc",
			q:    LeaderboardQuery{Season: 2024, Sort: SortTouchdowns, Order: OrderDesc, Page: 1, Limit: 2},
			data: [][]any{
				leaderboardRow(2, "Bo", "Baker", "RB", 22, 17, 12, 900, 0),
				leaderboardRow(3, "Cy", "Cole", "WR", nil, 16, 8, 700, 1),
			},
			total:     3,
			wantNames: []string{"Baker", "Cole"},
			wantRanks: []int{1, 2},
		},
		{
			name: "second page ranks continue",
			q:    LeaderboardQuery{Season: 2024, Page: 2, Limit: 2},
			data: [][]any{
				leaderboardRow(1, "Al", "Adams", "QB", 5, 0, 0, 0, 0),
			},
			total:     3,
			wantNames: []string{"Adams"},
			wantRanks: []int{3},
		},
		{
			name:      "out of range page",
			q:         LeaderboardQuery{Season: 2024, Page: 9, Limit: 25},
			data:      nil,
			total:     3,
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := &MockPgPool{
				QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
					return &MockRows{Data: tt.data}, nil
				},
				QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
					if !strings.HasPrefix(sql, "SELECT COUNT(*)") {
						t.Errorf("unexpected QueryRow: %s", sql)
					}
					return &MockRow{Values: []any{tt.total}}
				},
			}

			page, err := NewLeaderboardService(pg).List(context.Background(), tt.q)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}

			if len(page.Rows) != len(tt.wantNames) {
				t.Fatalf("got %d rows, want %d", len(page.Rows), len(tt.wantNames))
			}
			for i, row := range page.Rows {
				if row.LastName != tt.wantNames[i] {
					t.Errorf("row %d = %s, want %s", i, row.LastName, tt.wantNames[i])
				}
				if row.Rank != tt.wantRanks[i] {
					t.Errorf("row %d rank = %d, want %d", i, row.Rank, tt.wantRanks[i])
				}
				if row.Season != tt.q.Season {
					t.Errorf("row %d season = %d, want %d", i, row.Season, tt.q.Season)
				}
				if row.ID != row.PlayerID {
					t.Errorf("row %d id %d != playerId %d", i, row.ID, row.PlayerID)
				}
			}
			if page.Pagination.Total != tt.total {
				t.Errorf("Total = %d, want %d", page.Pagination.Total, tt.total)
			}
			if page.Rows == nil {
				t.Error("Rows should be an empty slice, not nil")
			}
		})
	}
}

func TestLeaderboardList_NullableColumns(t *testing.T) {
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return &MockRows{Data: [][]any{
				{int64(9), "No", "Stats", "K", nil, "inactive", nil, nil, nil, nil, nil, nil, 0, 0, 0, 0},
			}}, nil
		},
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &MockRow{Values: []any{int64(1)}}
		},
	}

	page, err := NewLeaderboardService(pg).List(context.Background(), LeaderboardQuery{Season: 2022, Page: 1, Limit: 25})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	row := page.Rows[0]
	if row.JerseyNumber != nil || row.Age != nil || row.College != nil {
		t.Errorf("nullable columns should stay nil: %+v", row)
	}
	if row.Touchdowns != 0 || row.GamesPlayed != 0 {
		t.Errorf("counters should be zero: %+v", row)
	}
}

func TestLeaderboardList_Errors(t *testing.T) {
	dbErr := errors.New("connection reset")

	t.Run("count fails", func(t *testing.T) {
		pg := &MockPgPool{
			QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &MockRow{Err: dbErr}
			},
		}
		_, err := NewLeaderboardService(pg).List(context.Background(), LeaderboardQuery{Season: 2024, Page: 1, Limit: 25})
		if !errors.Is(err, dbErr) {
			t.Errorf("error = %v, want wrapped %v", err, dbErr)
		}
	})

	t.Run("rows fail", func(t *testing.T) {
		pg := &MockPgPool{
			QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return nil, dbErr
			},
			QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &MockRow{Values: []any{int64(0)}}
			},
		}
		_, err := NewLeaderboardService(pg).List(context.Background(), LeaderboardQuery{Season: 2024, Page: 1, Limit: 25})
		if !errors.Is(err, dbErr) {
			t.Errorf("error = %v, want wrapped %v", err, dbErr)
		}
	})
}

func TestLeaderboardExport(t *testing.T) {
	t.Run("stops at the safety cap", func(t *testing.T) {
		data := make([][]any, ExportRowCap+50)
		for i := range data {
			data[i] = leaderboardRow(int64(i+1), "P", "Player", "WR", nil, 1, 1, 1, 1)
		}
		var captured []any
		rows := &MockRows{Data: data}
		pg := &MockPgPool{
			QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				captured = args
				return rows, nil
			},
		}

		emitted := 0
		n, err := NewLeaderboardService(pg).Export(context.Background(), LeaderboardQuery{Season: 2024}, func(models.LeaderboardRow) error {
			emitted++
			return nil
		})
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if n != ExportRowCap || emitted != ExportRowCap {
			t.Errorf("exported %d (emitted %d), want %d", n, emitted, ExportRowCap)
		}
		if !rows.Closed {
			t.Error("rows were not closed")
		}
		if len(captured) != 3 || captured[1] != ExportRowCap {
			t.Errorf("export should bind LIMIT %d, args = %v", ExportRowCap, captured)
		}
	})

	t.Run("emit error aborts", func(t *testing.T) {
		pg := &MockPgPool{
			QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return &MockRows{Data: [][]any{
					leaderboardRow(1, "A", "A", "QB", nil, 0, 0, 0, 0),
					leaderboardRow(2, "B", "B", "QB", nil, 0, 0, 0, 0),
				}}, nil
			},
		}
		writeErr := errors.New("client went away")
		n, err := NewLeaderboardService(pg).Export(context.Background(), LeaderboardQuery{Season: 2024}, func(models.LeaderboardRow) error {
			return writeErr
		})
		if !errors.Is(err, writeErr) {
			t.Errorf("error = %v, want %v", err, writeErr)
		}
		if n != 1 {
			t.Errorf("n = %d, want 1", n)
		}
	})
}

func TestLeaderboardList_HugePageIsEmpty(t *testing.T) {
	var offset any
	pg := &MockPgPool{
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			offset = args[len(args)-1]
			return &MockRows{}, nil
		},
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &MockRow{Values: []any{int64(3)}}
		},
	}

	page, err := NewLeaderboardService(pg).List(context.Background(),
		LeaderboardQuery{Season: 2024, Sort: SortTouchdowns, Order: OrderDesc, Page: 400000000000000000, Limit: 25})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if offset != math.MaxInt {
		t.Errorf("offset arg = %v, want %d", offset, math.MaxInt)
	}
	if len(page.Rows) != 0 || page.Rows == nil {
		t.Errorf("Rows = %#v, want empty slice", page.Rows)
	}
	meta := page.Pagination.Meta(len(page.Rows), "/leaderboard")
	if meta.From != nil || meta.LastPage != 1 {
		t.Errorf("meta = %+v", meta)
	}
}
