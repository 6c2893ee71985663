package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

const testToken = "good-token"

// fixedNow is the clock used by every handler test.
var fixedNow = time.Date(2024, time.November, 3, 14, 5, 9, 0, time.UTC)

// MockLeaderboardService
type MockLeaderboardService struct {
	ListFunc   func(ctx context.Context, q logic.LeaderboardQuery) (*models.LeaderboardPage, error)
	ExportFunc func(ctx context.Context, q logic.LeaderboardQuery, emit func(models.LeaderboardRow) error) (int, error)
	LastQuery  logic.LeaderboardQuery
}

func (m *MockLeaderboardService) List(ctx context.Context, q logic.LeaderboardQuery) (*models.LeaderboardPage, error) {
	m.LastQuery = q
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return &models.LeaderboardPage{Pagination: models.NewPagination(q.Page, q.Limit, 0)}, nil
}

func (m *MockLeaderboardService) Export(ctx context.Context, q logic.LeaderboardQuery, emit func(models.LeaderboardRow) error) (int, error) {
	m.LastQuery = q
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, q, emit)
	}
	return 0, nil
}

// MockPlayerService
type MockPlayerService struct {
	ListFunc   func(ctx context.Context, q logic.PlayerListQuery) (*models.PlayerPage, error)
	GetFunc    func(ctx context.Context, id int64) (*models.Player, error)
	CreateFunc func(ctx context.Context, in *models.PlayerInput) (*models.Player, error)
	UpdateFunc func(ctx context.Context, id int64, in *models.PlayerInput) (*models.Player, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *MockPlayerService) List(ctx context.Context, q logic.PlayerListQuery) (*models.PlayerPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return &models.PlayerPage{Pagination: models.NewPagination(q.Page, q.Limit, 0)}, nil
}

func (m *MockPlayerService) Get(ctx context.Context, id int64) (*models.Player, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, logic.ErrNotFound
}

func (m *MockPlayerService) Create(ctx context.Context, in *models.PlayerInput) (*models.Player, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &models.Player{ID: 1, PlayerID: 1}, nil
}

func (m *MockPlayerService) Update(ctx context.Context, id int64, in *models.PlayerInput) (*models.Player, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return &models.Player{ID: id, PlayerID: id}, nil
}

func (m *MockPlayerService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockGameService
type MockGameService struct {
	RecentFunc func(ctx context.Context, q logic.GameQuery) ([]models.GameSummary, error)
	LastQuery  logic.GameQuery
}

func (m *MockGameService) Recent(ctx context.Context, q logic.GameQuery) ([]models.GameSummary, error) {
	m.LastQuery = q
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, q)
	}
	return nil, nil
}

// MockAuthService accepts testToken and rejects everything else.
type MockAuthService struct {
	IssueTokenFunc func(ctx context.Context, req models.TokenRequest) (string, error)
}

func (m *MockAuthService) IssueToken(ctx context.Context, req models.TokenRequest) (string, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, req)
	}
	return "issued-token", nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*models.Principal, error) {
	if token != testToken {
		return nil, logic.ErrUnauthenticated
	}
	return &models.Principal{UserID: 1, TokenID: 10, Name: "Admin", Email: "admin@leaderboard.local"}, nil
}

// MockRedis counts INCRs in memory.
type MockRedis struct {
	mu      sync.Mutex
	counts  map[string]int64
	expires map[string]time.Duration
	IncrErr error
	PingErr error
}

func NewMockRedis() *MockRedis {
	return &MockRedis{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (m *MockRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IncrErr != nil {
		return redis.NewIntResult(0, m.IncrErr)
	}
	m.counts[key]++
	return redis.NewIntResult(m.counts[key], nil)
}

func (m *MockRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (m *MockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.PingErr)
}

// MockPinger
type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error { return m.Err }

// newTestHandler fills any service left nil in cfg with a default mock.
func newTestHandler(cfg Config) *Handler {
	if cfg.Leaderboard == nil {
		cfg.Leaderboard = &MockLeaderboardService{}
	}
	if cfg.Players == nil {
		cfg.Players = &MockPlayerService{}
	}
	if cfg.Games == nil {
		cfg.Games = &MockGameService{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &MockAuthService{}
	}
	if cfg.Postgres == nil {
		cfg.Postgres = &MockPinger{}
	}
	cfg.Logger = zap.NewNop()
	cfg.Now = func() time.Time { return fixedNow }
	return New(cfg)
}

func newTestRouter(h *Handler) http.Handler {
	return NewRouter(h, RouterOptions{
		AllowedOrigins:  []string{"http://localhost:5173"},
		AuthRateLimit:   10,
		APIRateLimit:    60,
		RateLimitWindow: time.Minute,
	})
}

// do sends an authenticated request through the full router.
func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
