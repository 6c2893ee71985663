package seed

import "math/rand/v2"

type statRange struct {
	min, max int
}

func (r statRange) draw(rng *rand.Rand) int {
	if r.max <= r.min {
		return r.min
	}
	return r.min + rng.IntN(r.max-r.min+1)
}

// positionProfile holds touchdown, yard and tackle ranges for a position.
type positionProfile struct {
	touchdowns, yards, tackles statRange
}

var (
	offenseSkill = positionProfile{statRange{0, 18}, statRange{150, 1600}, statRange{0, 30}}
	defense      = positionProfile{statRange{0, 6}, statRange{0, 200}, statRange{20, 160}}
	specialTeams = positionProfile{}
	utility      = positionProfile{statRange{0, 10}, statRange{0, 800}, statRange{0, 80}}
)

var positionProfiles = map[string]positionProfile{
	"QB": {statRange{5, 45}, statRange{2000, 5200}, statRange{0, 25}},
	"RB": {statRange{0, 20}, statRange{200, 1800}, statRange{0, 50}},
	"WR": offenseSkill,
	"TE": offenseSkill,
	"OL": {statRange{0, 2}, statRange{0, 50}, statRange{0, 15}},
	"DL": defense,
	"LB": defense,
	"CB": defense,
	"S":  defense,
	"K":  specialTeams,
	"P":  specialTeams,
}

// StatLine is one generated season for one player.
type StatLine struct {
	PlayerID    int64
	Season      int
	GamesPlayed int
	Touchdowns  int
	Yards       int
	Tackles     int
}

// SeasonLine draws a plausible season for a player at position.
func SeasonLine(rng *rand.Rand, playerID int64, position string, season int) StatLine {
	profile, ok := positionProfiles[position]
	if !ok {
		profile = utility
	}
	return StatLine{
		PlayerID:    playerID,
		Season:      season,
		GamesPlayed: rng.IntN(18),
		Touchdowns:  profile.touchdowns.draw(rng),
		Yards:       profile.yards.draw(rng),
		Tackles:     profile.tackles.draw(rng),
	}
}

// SeasonSpan returns the first season of a span of count seasons ending at last.
func SeasonSpan(last, count int) int {
	return last - max(count-1, 0)
}
