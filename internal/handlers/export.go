package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

// flushEvery controls how often buffered CSV rows are pushed to the client.
const flushEvery = 200

// ExportLeaderboard streams the filtered leaderboard as CSV
// @Summary Export Leaderboard
// @Description Same filters and ordering as the leaderboard, without pagination, capped at 5000 rows.
// @Tags Leaderboard
// @Produce text/csv
// @Security BearerToken
// @Param season query int false "Season year"
// @Param search query string false "Name, position or jersey number"
// @Param position query string false "Position code"
// @Param status query string false "active or inactive"
// @Param sort query string false "Sort key" default(touchdowns)
// @Param order query string false "asc or desc" default(desc)
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /leaderboard/export [get]
func (h *Handler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	var params models.LeaderboardParams
	if errs := h.bindAndValidate(r, &params); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	now := h.now()
	q := logic.NewLeaderboardQuery(params, now)
	stream := &csvStream{
		w:        w,
		out:      csv.NewWriter(w),
		filename: fmt.Sprintf("leaderboard_%d_%s.csv", q.Season, now.Format("20060102_150405")),
	}

	n, err := h.leaderboard.Export(r.Context(), q, stream.write)
	if err != nil {
		if !stream.started {
			h.handleError(w, r, err)
			return
		}
		// Headers are gone; the client sees a truncated file.
		stream.flush()
		h.logger.Errorw("Leaderboard export aborted", "season", q.Season, "rows", n, "error", err)
		return
	}
	if err := stream.finish(); err != nil {
		h.logger.Warnw("Failed to finish CSV export", "season", q.Season, "error", err)
		return
	}

	h.metrics.AddExportRows(n)
	h.logger.Infow("Leaderboard exported", "season", q.Season, "rows", n, "sort", q.Sort.String())
}

// csvStream defers the response headers until the first row so a failing
// query can still be reported as JSON.
type csvStream struct {
	w        http.ResponseWriter
	out      *csv.Writer
	filename string
	started  bool
	rows     int
}

func (s *csvStream) start() error {
	header := s.w.Header()
	header.Set("Content-Type", "text/csv; charset=utf-8")
	header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, s.filename))
	header.Set("Cache-Control", "no-store")
	s.w.WriteHeader(http.StatusOK)
	s.started = true
	return s.out.Write(models.LeaderboardCSVHeader)
}

func (s *csvStream) write(row models.LeaderboardRow) error {
	if !s.started {
		if err := s.start(); err != nil {
			return err
		}
	}
	if err := s.out.Write(row.CSVRecord()); err != nil {
		return err
	}
	s.rows++
	if s.rows%flushEvery == 0 {
		s.flush()
		return s.out.Error()
	}
	return nil
}

func (s *csvStream) finish() error {
	if !s.started {
		if err := s.start(); err != nil {
			return err
		}
	}
	s.flush()
	return s.out.Error()
}

func (s *csvStream) flush() {
	s.out.Flush()
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
}
