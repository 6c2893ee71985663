package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterboard/roster-api/internal/models"
)

func intPtr(i int) *int { return &i }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestQueryValues(t *testing.T) {
	values := queryValues(models.LeaderboardParams{
		Season:   intPtr(2024),
		Position: "QB",
		Order:    "asc",
	})
	assert.Equal(t, "order=asc&position=QB&season=2024", values.Encode())
	assert.Empty(t, queryValues(models.GameListParams{}))
}

func TestLeaderboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboard", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2023", r.URL.Query().Get("season"))
		writeJSON(w, http.StatusOK, models.PageResponse[models.LeaderboardRow]{
			Data: []models.LeaderboardRow{{Rank: 1, PlayerID: 7, LastName: "Purdy", Touchdowns: 31}},
			Meta: models.PageMeta{CurrentPage: 1, LastPage: 1, PerPage: 25, Total: 1},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL, StaticToken("tok")).Leaderboard(context.Background(), models.LeaderboardParams{Season: intPtr(2023)})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Purdy", page.Data[0].LastName)
	assert.Equal(t, int64(1), page.Meta.Total)
}

func TestExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="leaderboard_2024_20241103_140509.csv"`)
		_, _ = w.Write([]byte("playerId,firstName\n1,Brock\n"))
	}))
	defer srv.Close()

	var buf strings.Builder
	res, err := New(srv.URL, StaticToken("tok")).Export(context.Background(), models.LeaderboardParams{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "leaderboard_2024_20241103_140509.csv", res.Filename)
	assert.Equal(t, int64(buf.Len()), res.Bytes)
	assert.Equal(t, "playerId,firstName\n1,Brock\n", buf.String())
}

func TestPasswordCredentialsInvalidatedOn401(t *testing.T) {
	var issued, calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token":
			var req models.TokenRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "admin@leaderboard.local", req.Email)
			n := issued.Add(1)
			writeJSON(w, http.StatusOK, models.TokenResponse{Token: "tok-" + strconv.Itoa(int(n)), TokenType: "Bearer"})
		case "/games":
			calls.Add(1)
			// The first token has been revoked.
			if r.Header.Get("Authorization") == "Bearer tok-1" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthenticated."})
				return
			}
			writeJSON(w, http.StatusOK, models.DataResponse[[]models.GameSummary]{Data: []models.GameSummary{{ID: 3}}})
		}
	}))
	defer srv.Close()

	creds := &PasswordCredentials{BaseURL: srv.URL, Email: "admin@leaderboard.local", Password: "password123"}
	c := New(srv.URL, creds)
	ctx := context.Background()

	_, err := c.Games(ctx, models.GameListParams{Limit: intPtr(5)})
	assert.True(t, IsStatus(err, http.StatusUnauthorized), "got %v", err)
	assert.Equal(t, int32(1), calls.Load(), "a rejected request is not retried")

	games, err := c.Games(ctx, models.GameListParams{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, int32(2), issued.Load())

	_, err = c.Games(ctx, models.GameListParams{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), issued.Load(), "cached token should be reused")
}

func TestAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "The given data was invalid.",
				"errors": map[string][]string{"jersey_number": {"The jersey number has already been taken."}},
			})
		case http.MethodDelete:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
		default:
			w.Header().Set("Retry-After", "12")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	ctx := context.Background()

	_, err := c.CreatePlayer(ctx, map[string]any{"first_name": "X"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Errors, "jersey_number")
	assert.Contains(t, err.Error(), "jersey_number")

	err = c.DeletePlayer(ctx, 99)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Contains(t, err.Error(), "Player not found")

	_, err = c.Player(ctx, 1)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "12s", apiErr.RetryAfter.String())
}

func TestUpdatePlayerSendsNulls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/players/12", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		v, present := body["college"]
		assert.True(t, present)
		assert.Nil(t, v)
		writeJSON(w, http.StatusOK, models.DataResponse[models.Player]{Data: models.Player{ID: 12, LastName: "Kittle"}})
	}))
	defer srv.Close()

	p, err := New(srv.URL, StaticToken("tok")).UpdatePlayer(context.Background(), 12, map[string]any{"college": nil})
	require.NoError(t, err)
	assert.Equal(t, "Kittle", p.LastName)
}

func TestHealthIsPublic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "timestamp": "2024-11-03T14:05:09Z"})
	}))
	defer srv.Close()

	h, err := New(srv.URL, StaticToken("tok")).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, 2024, h.Timestamp.Year())
}
