package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

// ListPlayers returns a page of the roster
// @Summary List Players
// @Tags Players
// @Produce json
// @Security BearerToken
// @Param search query string false "Name, position or jersey number"
// @Param position query string false "Position code"
// @Param status query string false "active or inactive"
// @Param sort query string false "lastName, firstName, jerseyNumber, position, createdAt" default(lastName)
// @Param order query string false "asc or desc" default(asc)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(25)
// @Success 200 {object} models.PageResponse[models.Player]
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	var params models.PlayerListParams
	if errs := h.bindAndValidate(r, &params); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	page, err := h.players.List(r.Context(), logic.NewPlayerListQuery(params))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	players := page.Players
	if players == nil {
		players = []models.Player{}
	}
	u := requestURL(r)
	h.jsonResponse(w, http.StatusOK, models.PageResponse[models.Player]{
		Data:  players,
		Meta:  page.Pagination.Meta(len(players), pathOf(u)),
		Links: page.Pagination.Links(u),
	})
}

// GetPlayer returns one player
// @Summary Get Player
// @Tags Players
// @Produce json
// @Security BearerToken
// @Param id path int true "Player ID"
// @Success 200 {object} models.DataResponse[models.Player]
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}

	player, err := h.players.Get(r.Context(), id)
	if err != nil {
		h.playerError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, models.DataResponse[*models.Player]{Data: player})
}

// CreatePlayer adds a player to the roster
// @Summary Create Player
// @Tags Players
// @Accept json
// @Produce json
// @Security BearerToken
// @Param player body models.PlayerInput true "Player"
// @Success 201 {object} models.DataResponse[models.Player]
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var in models.PlayerInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.bodyError(w, err)
		return
	}
	in.Normalize()
	if errs := h.validatePlayer(&in, true); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	player, err := h.players.Create(r.Context(), &in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.Infow("Player created", "player_id", player.ID, "by", principalID(r))
	h.jsonResponse(w, http.StatusCreated, models.DataResponse[*models.Player]{Data: player})
}

// UpdatePlayer applies a partial update; omitted fields are left alone
// @Summary Update Player
// @Tags Players
// @Accept json
// @Produce json
// @Security BearerToken
// @Param id path int true "Player ID"
// @Param player body models.PlayerInput true "Fields to change"
// @Success 200 {object} models.DataResponse[models.Player]
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /players/{id} [put]
// @Router /players/{id} [patch]
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}

	var in models.PlayerInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.bodyError(w, err)
		return
	}
	in.Normalize()
	if errs := h.validatePlayer(&in, false); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	player, err := h.players.Update(r.Context(), id, &in)
	if err != nil {
		h.playerError(w, r, err)
		return
	}

	h.logger.Infow("Player updated", "player_id", id, "by", principalID(r))
	h.jsonResponse(w, http.StatusOK, models.DataResponse[*models.Player]{Data: player})
}

// DeletePlayer removes a player and their season stats
// @Summary Delete Player
// @Tags Players
// @Security BearerToken
// @Param id path int true "Player ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /players/{id} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}

	if err := h.players.Delete(r.Context(), id); err != nil {
		h.playerError(w, r, err)
		return
	}

	h.logger.Infow("Player deleted", "player_id", id, "by", principalID(r))
	w.WriteHeader(http.StatusNoContent)
}

// validatePlayer checks field rules plus presence of the required fields.
// On create they must be supplied; on update they may be omitted but not nulled.
func (h *Handler) validatePlayer(in *models.PlayerInput, creating bool) models.FieldErrors {
	errs := h.validate(in)
	for _, field := range models.RequiredPlayerFields {
		if _, bad := errs[field]; bad {
			continue
		}
		missing := in.IsNull(field) || (creating && !in.Has(field))
		if missing {
			errs.Add(field, fmt.Sprintf("The %s field is required.", models.HumanizeField(field)))
		}
	}
	return errs
}

// playerID parses the {id} route parameter. Anything that is not a
// positive integer cannot name a player.
func (h *Handler) playerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) playerError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, logic.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	h.handleError(w, r, err)
}

func principalID(r *http.Request) int64 {
	if p, ok := PrincipalFrom(r.Context()); ok {
		return p.UserID
	}
	return 0
}
