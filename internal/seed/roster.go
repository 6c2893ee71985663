// Package seed fills a development database with a roster, a schedule and
// generated season stats.
package seed

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rosterboard/roster-api/internal/models"
)

//go:embed data/roster.csv
var rosterCSV string

var requiredRosterColumns = []string{"first_name", "last_name", "jersey_number", "position", "status"}

// RosterEntry is one player line of the roster file.
type RosterEntry struct {
	FirstName       string
	LastName        string
	JerseyNumber    int
	Position        string
	Status          string
	Age             *int
	HeightIn        *int
	WeightLb        *int
	ExperienceYears *int
	College         *string
}

// DefaultRoster parses the embedded roster.
func DefaultRoster() ([]RosterEntry, error) {
	return ParseRoster(strings.NewReader(rosterCSV))
}

// ParseRoster reads a roster CSV with a header row. Unknown statuses fall
// back to active; blank optional cells become NULL.
func ParseRoster(r io.Reader) ([]RosterEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("roster: file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("roster: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredRosterColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("roster: missing required column %q", name)
		}
	}

	var entries []RosterEntry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster: line %d: %w", line, err)
		}

		cell := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		jersey, err := strconv.Atoi(cell("jersey_number"))
		if err != nil {
			return nil, fmt.Errorf("roster: line %d: jersey_number %q is not a number", line, cell("jersey_number"))
		}

		e := RosterEntry{
			FirstName:    cell("first_name"),
			LastName:     cell("last_name"),
			JerseyNumber: jersey,
			Position:     strings.ToUpper(cell("position")),
			Status:       cell("status"),
		}
		if e.Status != models.StatusActive && e.Status != models.StatusInactive {
			e.Status = models.StatusActive
		}

		for name, dst := range map[string]**int{
			"age":              &e.Age,
			"height_in":        &e.HeightIn,
			"weight_lb":        &e.WeightLb,
			"experience_years": &e.ExperienceYears,
		} {
			raw := cell(name)
			if raw == "" {
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("roster: line %d: %s %q is not a number", line, name, raw)
			}
			*dst = &n
		}
		if college := cell("college"); college != "" {
			e.College = &college
		}

		entries = append(entries, e)
	}
	return entries, nil
}
