package models

import (
	"fmt"
	"strings"
	"time"
)

// GameDateLayout is the human date shown on schedule cards.
const GameDateLayout = "January 2, 2006"

const (
	LocationHome = "home"
	LocationAway = "away"
)

// Game is a stored schedule entry, legacy columns included.
type Game struct {
	ID           int64
	Season       *int
	GameDate     time.Time
	Location     string
	Opponent     string
	OpponentCity *string
	OpponentName *string
	ScoreFor     int
	ScoreAgainst int
	Result       *string
	Stadium      *string
	Venue        *string
	LogoURL      *string
}

// GameSummary is the resolved, read-only view of a game.
type GameSummary struct {
	ID           int64   `json:"id"`
	Season       *int    `json:"season"`
	GameDate     string  `json:"gameDate"`
	Date         string  `json:"date"`
	Location     string  `json:"location"`
	Stadium      string  `json:"stadium"`
	OpponentCity string  `json:"opponentCity"`
	OpponentName string  `json:"opponentName"`
	Result       string  `json:"result"`
	Score        string  `json:"score"`
	ScoreFor     int     `json:"scoreFor"`
	ScoreAgainst int     `json:"scoreAgainst"`
	LogoURL      *string `json:"logoUrl"`
}

// ResultFor derives W/L from a score pair. A tie counts as a win.
func ResultFor(scoreFor, scoreAgainst int) string {
	if scoreFor >= scoreAgainst {
		return "W"
	}
	return "L"
}

// Summary resolves split vs legacy columns into the canonical view.
func (g Game) Summary() GameSummary {
	city, name := g.opponent()
	return GameSummary{
		ID:           g.ID,
		Season:       g.Season,
		GameDate:     g.GameDate.Format(time.DateOnly),
		Date:         g.GameDate.Format(GameDateLayout),
		Location:     g.Location,
		Stadium:      firstNonEmpty(g.Stadium, g.Venue),
		OpponentCity: city,
		OpponentName: name,
		Result:       g.result(),
		Score:        fmt.Sprintf("%d-%d", g.ScoreFor, g.ScoreAgainst),
		ScoreFor:     g.ScoreFor,
		ScoreAgainst: g.ScoreAgainst,
		LogoURL:      g.LogoURL,
	}
}

func (g Game) result() string {
	if g.Result != nil {
		switch r := strings.ToUpper(strings.TrimSpace(*g.Result)); r {
		case "W", "L":
			return r
		}
	}
	return ResultFor(g.ScoreFor, g.ScoreAgainst)
}

// opponent prefers the split columns. The legacy combined string is
// split at its last space ("Kansas City Chiefs" -> "Kansas City", "Chiefs").
func (g Game) opponent() (city, name string) {
	city = firstNonEmpty(g.OpponentCity)
	name = firstNonEmpty(g.OpponentName)
	if city != "" || name != "" {
		return city, name
	}

	legacy := strings.TrimSpace(g.Opponent)
	if i := strings.LastIndex(legacy, " "); i > 0 {
		return strings.TrimSpace(legacy[:i]), legacy[i+1:]
	}
	return "", legacy
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil {
			if s := strings.TrimSpace(*v); s != "" {
				return s
			}
		}
	}
	return ""
}
