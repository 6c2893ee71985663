package handlers

import (
	"net/http"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

// GetLeaderboard returns one page of the season leaderboard
// @Summary Season Leaderboard
// @Description Every roster player ranked by a season stat. Players without stats for the season appear with zeros.
// @Tags Leaderboard
// @Produce json
// @Security BearerToken
// @Param season query int false "Season year" default(current year)
// @Param search query string false "Name, position or jersey number"
// @Param position query string false "Position code (QB, WR, ...)"
// @Param status query string false "active or inactive"
// @Param sort query string false "touchdowns, yards, tackles, gamesPlayed, lastName, firstName, jerseyNumber, position, age, heightIn, weightLb, experienceYears" default(touchdowns)
// @Param order query string false "asc or desc" default(desc)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(25)
// @Success 200 {object} models.PageResponse[models.LeaderboardRow]
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var params models.LeaderboardParams
	if errs := h.bindAndValidate(r, &params); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	q := logic.NewLeaderboardQuery(params, h.now())
	page, err := h.leaderboard.List(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rows := page.Rows
	if rows == nil {
		rows = []models.LeaderboardRow{}
	}
	u := requestURL(r)
	h.jsonResponse(w, http.StatusOK, models.PageResponse[models.LeaderboardRow]{
		Data:  rows,
		Meta:  page.Pagination.Meta(len(rows), pathOf(u)),
		Links: page.Pagination.Links(u),
	})
}
