package models

import "time"

// Player status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Player is a roster entry as exposed by the API.
type Player struct {
	ID              int64     `json:"id"`
	PlayerID        int64     `json:"playerId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Position        string    `json:"position"`
	JerseyNumber    *int      `json:"jerseyNumber"`
	Status          string    `json:"status"`
	Age             *int      `json:"age"`
	HeightIn        *int      `json:"heightIn"`
	WeightLb        *int      `json:"weightLb"`
	ExperienceYears *int      `json:"experienceYears"`
	College         *string   `json:"college"`
	HeadshotURL     *string   `json:"headshotUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PlayerStat is one season aggregate for a player.
type PlayerStat struct {
	ID          int64 `json:"id"`
	PlayerID    int64 `json:"playerId"`
	Season      int   `json:"season"`
	GamesPlayed int   `json:"gamesPlayed"`
	Touchdowns  int   `json:"touchdowns"`
	Yards       int   `json:"yards"`
	Tackles     int   `json:"tackles"`
}

// PlayerPage is a paginated player collection.
type PlayerPage struct {
	Players    []Player
	Pagination Pagination
}
