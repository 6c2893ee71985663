package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

type leaderboardBody struct {
	Data   []models.LeaderboardRow `json:"data"`
	Meta   models.PageMeta         `json:"meta"`
	Links  models.PageLinks        `json:"links"`
	Errors map[string][]string     `json:"errors"`
}

func TestGetLeaderboard(t *testing.T) {
	svc := &MockLeaderboardService{
		ListFunc: func(ctx context.Context, q logic.LeaderboardQuery) (*models.LeaderboardPage, error) {
			return &models.LeaderboardPage{
				Rows: []models.LeaderboardRow{
					{Rank: 3, ID: 7, PlayerID: 7, LastName: "Kittle", Season: q.Season, Touchdowns: 9},
					{Rank: 4, ID: 8, PlayerID: 8, LastName: "Aiyuk", Season: q.Season, Touchdowns: 7},
				},
				Pagination: models.NewPagination(q.Page, q.Limit, 5),
			}, nil
		},
	}
	router := newTestRouter(newTestHandler(Config{Leaderboard: svc}))

	w := do(t, router, http.MethodGet, "/leaderboard?season=2023&sort=yards&order=asc&page=2&limit=2&position=wr", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body leaderboardBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Len(t, body.Data, 2)
	assert.Equal(t, 3, body.Data[0].Rank)
	assert.Equal(t, 2, body.Meta.CurrentPage)
	assert.Equal(t, 3, body.Meta.LastPage)
	require.NotNil(t, body.Meta.From)
	assert.Equal(t, int64(3), *body.Meta.From)
	assert.Equal(t, int64(4), *body.Meta.To)
	assert.Equal(t, "http://example.com/leaderboard", body.Meta.Path)
	require.NotNil(t, body.Links.Next)
	assert.Contains(t, *body.Links.Next, "page=3")
	assert.Contains(t, *body.Links.Next, "season=2023")

	q := svc.LastQuery
	assert.Equal(t, 2023, q.Season)
	assert.Equal(t, logic.SortYards, q.Sort)
	assert.Equal(t, logic.OrderAsc, q.Order)
	assert.Equal(t, "WR", q.Filter.Position)
}

func TestGetLeaderboard_Defaults(t *testing.T) {
	svc := &MockLeaderboardService{}
	router := newTestRouter(newTestHandler(Config{Leaderboard: svc}))

	w := do(t, router, http.MethodGet, "/leaderboard?sort=bogus", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(mustField(t, w.Body.Bytes(), "data")))

	q := svc.LastQuery
	assert.Equal(t, fixedNow.Year(), q.Season)
	assert.Equal(t, logic.SortTouchdowns, q.Sort)
	assert.Equal(t, logic.OrderDesc, q.Order)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, logic.DefaultPageLimit, q.Limit)
}

func TestGetLeaderboard_HugePage(t *testing.T) {
	svc := &MockLeaderboardService{}
	router := newTestRouter(newTestHandler(Config{Leaderboard: svc}))

	w := do(t, router, http.MethodGet, "/leaderboard?page=400000000000000000&limit=25", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body leaderboardBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
	assert.Equal(t, 400000000000000000, body.Meta.CurrentPage)
	assert.Nil(t, body.Meta.From)
	assert.Nil(t, body.Meta.To)
	assert.Equal(t, 400000000000000000, svc.LastQuery.Page)
}

func TestGetLeaderboard_LongSortFallsBack(t *testing.T) {
	svc := &MockLeaderboardService{}
	router := newTestRouter(newTestHandler(Config{Leaderboard: svc}))

	w := do(t, router, http.MethodGet, "/leaderboard?sort="+strings.Repeat("touchdowns", 5), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, logic.SortTouchdowns, svc.LastQuery.Sort)
}

func TestGetLeaderboard_Validation(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"season too early", "season=1989", "season"},
		{"season in the future", "season=2025", "season"},
		{"season not a number", "season=last", "season"},
		{"limit too large", "limit=101", "limit"},
		{"page zero", "page=0", "page"},
		{"bad status", "status=retired", "status"},
		{"bad order", "order=sideways", "order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockLeaderboardService{
				ListFunc: func(ctx context.Context, q logic.LeaderboardQuery) (*models.LeaderboardPage, error) {
					t.Error("service should not be called")
					return nil, nil
				},
			}
			router := newTestRouter(newTestHandler(Config{Leaderboard: svc}))

			w := do(t, router, http.MethodGet, "/leaderboard?"+tt.query, "")

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var body leaderboardBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Errors, tt.wantField)
		})
	}
}

func TestGetLeaderboard_ServiceError(t *testing.T) {
	svc := &MockLeaderboardService{
		ListFunc: func(ctx context.Context, q logic.LeaderboardQuery) (*models.LeaderboardPage, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := newTestRouter(newTestHandler(Config{Leaderboard: svc}))

	w := do(t, router, http.MethodGet, "/leaderboard", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func mustField(t *testing.T, body []byte, field string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))
	return m[field]
}
