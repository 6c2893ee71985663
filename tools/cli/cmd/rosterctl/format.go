package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rosterboard/roster-api/internal/models"
)

// HeightFeetInches renders inches as 6'2". Unknown heights render as "-".
func HeightFeetInches(inches *int) string {
	if inches == nil || *inches <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d'%d\"", *inches/12, *inches%12)
}

func orDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func strOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeLeaderboard(w io.Writer, rows []models.LeaderboardRow) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "RANK\t#\tNAME\tPOS\tHT\tGP\tTD\tYDS\tTKL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			r.Rank, orDash(r.JerseyNumber), r.FirstName, r.LastName, r.Position,
			HeightFeetInches(r.HeightIn), r.GamesPlayed, r.Touchdowns, r.Yards, r.Tackles)
	}
	return tw.Flush()
}

func writePlayers(w io.Writer, players []models.Player) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\t#\tNAME\tPOS\tSTATUS\tAGE\tHT\tWT\tCOLLEGE")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\t%s %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, orDash(p.JerseyNumber), p.FirstName, p.LastName, p.Position, p.Status,
			orDash(p.Age), HeightFeetInches(p.HeightIn), orDash(p.WeightLb), strOrDash(p.College))
	}
	return tw.Flush()
}

func writeGames(w io.Writer, games []models.GameSummary) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tOPPONENT\tLOC\tRESULT\tSCORE\tSTADIUM")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
			g.GameDate, g.OpponentCity, g.OpponentName, g.Location, g.Result, g.Score, g.Stadium)
	}
	return tw.Flush()
}

func pageFooter(m models.PageMeta) string {
	if m.From == nil {
		return fmt.Sprintf("page %d of %d, no rows", m.CurrentPage, m.LastPage)
	}
	return fmt.Sprintf("page %d of %d, rows %d-%d of %d", m.CurrentPage, m.LastPage, *m.From, *m.To, m.Total)
}
