package handlers

import (
	"net/http"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

// ListGames returns the most recent games, newest first
// @Summary Recent Games
// @Tags Games
// @Produce json
// @Security BearerToken
// @Param season query int false "Season year"
// @Param limit query int false "Limit (max 50)" default(12)
// @Success 200 {object} models.DataResponse[[]models.GameSummary]
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /games [get]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	var params models.GameListParams
	if errs := h.bindAndValidate(r, &params); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	games, err := h.games.Recent(r.Context(), logic.NewGameQuery(params))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if games == nil {
		games = []models.GameSummary{}
	}
	h.jsonResponse(w, http.StatusOK, models.DataResponse[[]models.GameSummary]{Data: games})
}
