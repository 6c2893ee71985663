package seed

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"github.com/rosterboard/roster-api/internal/models"
)

// HomeStadium is where every home game is played.
const HomeStadium = "Levi's Stadium"

type opponent struct {
	City string
	Name string
}

var opponents = []opponent{
	{"SEATTLE", "SEAHAWKS"}, {"LOS ANGELES", "RAMS"}, {"ARIZONA", "CARDINALS"},
	{"DALLAS", "COWBOYS"}, {"PHILADELPHIA", "EAGLES"}, {"GREEN BAY", "PACKERS"},
	{"MINNESOTA", "VIKINGS"}, {"NEW ORLEANS", "SAINTS"}, {"TAMPA BAY", "BUCCANEERS"},
	{"PITTSBURGH", "STEELERS"}, {"CLEVELAND", "BROWNS"}, {"BALTIMORE", "RAVENS"},
	{"CINCINNATI", "BENGALS"}, {"JACKSONVILLE", "JAGUARS"}, {"HOUSTON", "TEXANS"},
	{"INDIANAPOLIS", "COLTS"}, {"KANSAS CITY", "CHIEFS"}, {"BUFFALO", "BILLS"},
	{"MIAMI", "DOLPHINS"}, {"NEW YORK", "JETS"}, {"NEW YORK", "GIANTS"},
	{"WASHINGTON", "COMMANDERS"}, {"CHICAGO", "BEARS"}, {"DETROIT", "LIONS"},
	{"LOS ANGELES", "CHARGERS"}, {"LAS VEGAS", "RAIDERS"}, {"NEW ENGLAND", "PATRIOTS"},
	{"TENNESSEE", "TITANS"}, {"CAROLINA", "PANTHERS"}, {"ATLANTA", "FALCONS"},
}

var stadiums = []string{
	HomeStadium,
	"SoFi Stadium",
	"Lumen Field",
	"AT&T Stadium",
	"Lincoln Financial Field",
	"Arrowhead Stadium",
}

// Team logos are shared Drive files; the thumbnail endpoint serves them inline.
var logoFiles = []string{
	"https://drive.google.com/file/d/124cICjygtM0YUlbOPnEeIP0393MuNn5X/view?usp=sharing",
	"https://drive.google.com/file/d/16kS7uQI3MdtqAEMrBRUOzEDoZt3u-Xeb/view?usp=sharing",
	"https://drive.google.com/file/d/1E8zVGkvZrKfua4ZyWi5zSNx-v9UDsMdx/view?usp=sharing",
	"https://drive.google.com/file/d/1JrifRGGFUaWO97DK1eAQZLWZjqp0732h/view?usp=sharing",
	"https://drive.google.com/file/d/1TRb1hVp4UYH_WHp0aNJPUiuSPvnctue9/view?usp=sharing",
	"https://drive.google.com/file/d/1X9fKqeZCuSRmMHpVis0MUcqgXQLqbTkF/view?usp=sharing",
	"https://drive.google.com/file/d/1ikXaKvzPWZKWyM1xhnv3TFcvcnm5FSy1/view?usp=sharing",
	"https://drive.google.com/file/d/1j61CiYT-2kzGcZJOAvk7qVerPDV-rDN1/view?usp=sharing",
	"https://drive.google.com/file/d/1mdy6sXIAXMq_MaT20IfhZz0sOWUjD6gC/view?usp=sharing",
	"https://drive.google.com/file/d/1yChvoTS8hjEZYJpbXASLzp3PAUy4CtH4/view?usp=sharing",
	"https://drive.google.com/file/d/1yv_faknEZ6piBaxsPI8e_sgQAafb76pT/view?usp=sharing",
}

var driveFileID = regexp.MustCompile(`/d/([^/]+)/`)

// DriveThumbnail rewrites a Drive share link to a direct thumbnail URL.
// Other URLs are returned unchanged.
func DriveThumbnail(shareURL string) string {
	m := driveFileID.FindStringSubmatch(shareURL)
	if m == nil {
		return shareURL
	}
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w256", m[1])
}

// GenerateGames builds n games spread over the 540 days starting 18 months
// before now. Season is the calendar year of the game date.
func GenerateGames(rng *rand.Rand, n int, now time.Time) []models.Game {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, -18, 0)

	games := make([]models.Game, 0, n)
	for i := 0; i < n; i++ {
		scoreFor := 10 + rng.IntN(36)
		scoreAgainst := 6 + rng.IntN(37)
		date := start.AddDate(0, 0, rng.IntN(541))
		season := date.Year()

		location := models.LocationAway
		stadium := stadiums[rng.IntN(len(stadiums))]
		if rng.IntN(2) == 1 {
			location = models.LocationHome
			stadium = HomeStadium
		}

		opp := opponents[rng.IntN(len(opponents))]
		city, name := opp.City, opp.Name
		venue := stadiums[rng.IntN(len(stadiums))]
		result := models.ResultFor(scoreFor, scoreAgainst)
		logo := DriveThumbnail(logoFiles[i%len(logoFiles)])

		games = append(games, models.Game{
			Season:       &season,
			GameDate:     date,
			Location:     location,
			Opponent:     opp.Name,
			OpponentCity: &city,
			OpponentName: &name,
			ScoreFor:     scoreFor,
			ScoreAgainst: scoreAgainst,
			Result:       &result,
			Stadium:      &stadium,
			Venue:        &venue,
			LogoURL:      &logo,
		})
	}
	return games
}
