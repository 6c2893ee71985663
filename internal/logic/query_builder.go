package logic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rosterboard/roster-api/internal/models"
)

const (
	DefaultPageLimit = 25
	MaxPageLimit     = 100

	// ExportRowCap bounds the number of rows a CSV export may stream.
	ExportRowCap = 5000
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder returns fallback for anything but asc/desc.
func ParseSortOrder(s string, fallback SortOrder) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case OrderAsc:
		return OrderAsc
	case OrderDesc:
		return OrderDesc
	}
	return fallback
}

func (o SortOrder) sql() string {
	if o == OrderAsc {
		return "ASC"
	}
	return "DESC"
}

// SortKey is a leaderboard column a caller may sort by.
type SortKey int

const (
	SortTouchdowns SortKey = iota
	SortYards
	SortTackles
	SortGamesPlayed
	SortLastName
	SortFirstName
	SortPosition
	SortJerseyNumber
	SortAge
	SortHeightIn
	SortWeightLb
	SortExperienceYears
	SortCollege
)

// sortKeyNames accepts the API's camelCase names and the dashboard's snake_case ones.
var sortKeyNames = map[string]SortKey{
	"touchdowns":       SortTouchdowns,
	"yards":            SortYards,
	"tackles":          SortTackles,
	"gamesPlayed":      SortGamesPlayed,
	"games_played":     SortGamesPlayed,
	"lastName":         SortLastName,
	"last_name":        SortLastName,
	"firstName":        SortFirstName,
	"first_name":       SortFirstName,
	"position":         SortPosition,
	"jerseyNumber":     SortJerseyNumber,
	"jersey_number":    SortJerseyNumber,
	"age":              SortAge,
	"heightIn":         SortHeightIn,
	"height_in":        SortHeightIn,
	"weightLb":         SortWeightLb,
	"weight_lb":        SortWeightLb,
	"experienceYears":  SortExperienceYears,
	"experience_years": SortExperienceYears,
	"college":          SortCollege,
}

// ParseSortKey never fails: unknown keys sort by touchdowns.
func ParseSortKey(s string) SortKey {
	if k, ok := sortKeyNames[strings.TrimSpace(s)]; ok {
		return k
	}
	return SortTouchdowns
}

func (k SortKey) String() string {
	switch k {
	case SortYards:
		return "yards"
	case SortTackles:
		return "tackles"
	case SortGamesPlayed:
		return "gamesPlayed"
	case SortLastName:
		return "lastName"
	case SortFirstName:
		return "firstName"
	case SortPosition:
		return "position"
	case SortJerseyNumber:
		return "jerseyNumber"
	case SortAge:
		return "age"
	case SortHeightIn:
		return "heightIn"
	case SortWeightLb:
		return "weightLb"
	case SortExperienceYears:
		return "experienceYears"
	case SortCollege:
		return "college"
	default:
		return "touchdowns"
	}
}

// column is the ORDER BY expression for k.
func (k SortKey) column() string {
	switch k {
	case SortYards:
		return "COALESCE(s.yards, 0)"
	case SortTackles:
		return "COALESCE(s.tackles, 0)"
	case SortGamesPlayed:
		return "COALESCE(s.games_played, 0)"
	case SortLastName:
		return "p.last_name"
	case SortFirstName:
		return "p.first_name"
	case SortPosition:
		return "p.position"
	case SortJerseyNumber:
		return "p.jersey_number"
	case SortAge:
		return "p.age"
	case SortHeightIn:
		return "p.height_in"
	case SortWeightLb:
		return "p.weight_lb"
	case SortExperienceYears:
		return "p.experience_years"
	case SortCollege:
		return "p.college"
	default:
		return "COALESCE(s.touchdowns, 0)"
	}
}

// RosterFilter holds the predicates shared by the leaderboard and the player list.
type RosterFilter struct {
	Search   string
	Position string
	Status   string
}

// LeaderboardQuery is a validated, defaulted leaderboard request.
type LeaderboardQuery struct {
	Season int
	Filter RosterFilter
	Sort   SortKey
	Order  SortOrder
	Page   int
	Limit  int
}

// NewLeaderboardQuery applies defaults to already validated parameters.
func NewLeaderboardQuery(p models.LeaderboardParams, now time.Time) LeaderboardQuery {
	q := LeaderboardQuery{
		Season: now.Year(),
		Filter: newRosterFilter(p.Search, p.Position, p.Status),
		Sort:   ParseSortKey(p.Sort),
		Order:  ParseSortOrder(p.Order, OrderDesc),
		Page:   1,
		Limit:  DefaultPageLimit,
	}
	if p.Season != nil {
		q.Season = *p.Season
	}
	if p.Page != nil && *p.Page > 0 {
		q.Page = *p.Page
	}
	if p.Limit != nil && *p.Limit > 0 {
		q.Limit = min(*p.Limit, MaxPageLimit)
	}
	return q
}

func newRosterFilter(search, position, status string) RosterFilter {
	return RosterFilter{
		Search:   strings.TrimSpace(search),
		Position: strings.ToUpper(strings.TrimSpace(position)),
		Status:   strings.ToLower(strings.TrimSpace(status)),
	}
}

// Statement is a parameterised SQL statement.
type Statement struct {
	SQL  string
	Args []any
}

type sqlBuilder struct {
	args []any
}

// bind appends v and returns its positional placeholder.
func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// where renders the filter as an AND of predicates over alias p.
func (f RosterFilter) where(b *sqlBuilder) string {
	var preds []string
	if f.Search != "" {
		pattern := b.bind("%" + likeEscaper.Replace(f.Search) + "%")
		preds = append(preds, fmt.Sprintf(
			"(p.first_name ILIKE %[1]s OR p.last_name ILIKE %[1]s OR CAST(p.jersey_number AS TEXT) LIKE %[1]s)", pattern))
	}
	if f.Position != "" {
		preds = append(preds, "UPPER(p.position) = "+b.bind(f.Position))
	}
	if f.Status != "" {
		preds = append(preds, "p.status = "+b.bind(f.Status))
	}
	if len(preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(preds, " AND ")
}

const leaderboardColumns = "p.id, p.first_name, p.last_name, p.position, p.jersey_number, p.status, " +
	"p.age, p.height_in, p.weight_lb, p.experience_years, p.college, p.headshot_url, " +
	"COALESCE(s.games_played, 0), COALESCE(s.touchdowns, 0), COALESCE(s.yards, 0), COALESCE(s.tackles, 0)"

// BuildLeaderboardQuery builds the row query used by both the paginated list
// and the CSV export. limit <= 0 omits LIMIT/OFFSET.
func BuildLeaderboardQuery(q LeaderboardQuery, limit, offset int) Statement {
	b := &sqlBuilder{}
	var sb strings.Builder

	season := b.bind(q.Season)
	sb.WriteString("WITH season_stats AS (SELECT player_id, games_played, touchdowns, yards, tackles FROM player_stats WHERE season = ")
	sb.WriteString(season)
	sb.WriteString(") SELECT ")
	sb.WriteString(leaderboardColumns)
	sb.WriteString(" FROM players p LEFT JOIN season_stats s ON s.player_id = p.id")
	sb.WriteString(q.Filter.where(b))
	fmt.Fprintf(&sb, " ORDER BY %s %s NULLS LAST, p.last_name ASC, p.first_name ASC, p.id ASC", q.Sort.column(), q.Order.sql())
	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %s OFFSET %s", b.bind(limit), b.bind(offset))
	}

	return Statement{SQL: sb.String(), Args: b.args}
}

// BuildLeaderboardCountQuery counts the players matched by the filter. Every
// player yields exactly one leaderboard row, so the stats join is not needed.
func BuildLeaderboardCountQuery(q LeaderboardQuery) Statement {
	return buildRosterCount(q.Filter)
}

func buildRosterCount(f RosterFilter) Statement {
	b := &sqlBuilder{}
	return Statement{SQL: "SELECT COUNT(*) FROM players p" + f.where(b), Args: b.args}
}

// PlayerListQuery is a validated, defaulted player list request.
type PlayerListQuery struct {
	Filter RosterFilter
	Sort   string
	Order  SortOrder
	Page   int
	Limit  int
}

func NewPlayerListQuery(p models.PlayerListParams) PlayerListQuery {
	q := PlayerListQuery{
		Filter: newRosterFilter(p.Search, p.Position, p.Status),
		Sort:   strings.TrimSpace(p.Sort),
		Order:  ParseSortOrder(p.Order, OrderAsc),
		Page:   1,
		Limit:  DefaultPageLimit,
	}
	if p.Page != nil && *p.Page > 0 {
		q.Page = *p.Page
	}
	if p.Limit != nil && *p.Limit > 0 {
		q.Limit = min(*p.Limit, MaxPageLimit)
	}
	return q
}

// allowedPlayerSorts whitelists single-column sorts for the player list.
var allowedPlayerSorts = map[string]string{
	"lastName":      "p.last_name",
	"last_name":     "p.last_name",
	"firstName":     "p.first_name",
	"first_name":    "p.first_name",
	"position":      "p.position",
	"jerseyNumber":  "p.jersey_number",
	"jersey_number": "p.jersey_number",
	"status":        "p.status",
}

const playerColumns = "p.id, p.first_name, p.last_name, p.position, p.jersey_number, p.status, " +
	"p.age, p.height_in, p.weight_lb, p.experience_years, p.college, p.headshot_url, p.created_at, p.updated_at"

func BuildPlayerListQuery(q PlayerListQuery) Statement {
	col, ok := allowedPlayerSorts[q.Sort]
	if !ok {
		col = "p.last_name"
	}

	b := &sqlBuilder{}
	var sb strings.Builder
	sb.WriteString("SELECT " + playerColumns + " FROM players p")
	sb.WriteString(q.Filter.where(b))
	fmt.Fprintf(&sb, " ORDER BY %s %s NULLS LAST, p.id ASC", col, q.Order.sql())
	offset := models.NewPagination(q.Page, q.Limit, 0).Offset()
	fmt.Fprintf(&sb, " LIMIT %s OFFSET %s", b.bind(q.Limit), b.bind(offset))

	return Statement{SQL: sb.String(), Args: b.args}
}

func BuildPlayerCountQuery(q PlayerListQuery) Statement {
	return buildRosterCount(q.Filter)
}
