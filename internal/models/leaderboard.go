package models

import "strconv"

// LeaderboardRow is a player joined with one season aggregate.
// Counters are zero when the player has no stat row for the season.
type LeaderboardRow struct {
	Rank            int     `json:"rank"`
	ID              int64   `json:"id"`
	PlayerID        int64   `json:"playerId"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Position        string  `json:"position"`
	JerseyNumber    *int    `json:"jerseyNumber"`
	Status          string  `json:"status"`
	Age             *int    `json:"age"`
	HeightIn        *int    `json:"heightIn"`
	WeightLb        *int    `json:"weightLb"`
	ExperienceYears *int    `json:"experienceYears"`
	College         *string `json:"college"`
	HeadshotURL     *string `json:"headshotUrl"`
	Season          int     `json:"season"`
	GamesPlayed     int     `json:"gamesPlayed"`
	Touchdowns      int     `json:"touchdowns"`
	Yards           int     `json:"yards"`
	Tackles         int     `json:"tackles"`
}

// LeaderboardPage is one page of leaderboard rows.
type LeaderboardPage struct {
	Rows       []LeaderboardRow
	Pagination Pagination
}

// LeaderboardCSVHeader is the fixed column order of the CSV export.
var LeaderboardCSVHeader = []string{
	"playerId", "firstName", "lastName", "position", "jerseyNumber", "status",
	"age", "heightIn", "weightLb", "experienceYears", "college",
	"season", "gamesPlayed", "touchdowns", "yards", "tackles",
}

// CSVRecord renders the row in LeaderboardCSVHeader order.
// NULL columns become empty cells.
func (r LeaderboardRow) CSVRecord() []string {
	return []string{
		strconv.FormatInt(r.PlayerID, 10),
		r.FirstName,
		r.LastName,
		r.Position,
		optInt(r.JerseyNumber),
		r.Status,
		optInt(r.Age),
		optInt(r.HeightIn),
		optInt(r.WeightLb),
		optInt(r.ExperienceYears),
		optString(r.College),
		strconv.Itoa(r.Season),
		strconv.Itoa(r.GamesPlayed),
		strconv.Itoa(r.Touchdowns),
		strconv.Itoa(r.Yards),
		strconv.Itoa(r.Tackles),
	}
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
