package handlers

import (
	"errors"
	"net/http"

	"github.com/rosterboard/roster-api/internal/models"
)

// IssueToken exchanges email and password for a bearer token
// @Summary Issue API Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.TokenRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 429 {object} map[string]string
// @Router /auth/token [post]
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.bodyError(w, err)
		return
	}
	if errs := h.validate(&req); len(errs) > 0 {
		h.validationResponse(w, errs)
		return
	}

	token, err := h.auth.IssueToken(r.Context(), req)
	if err != nil {
		var fieldErrs models.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.metrics.IncAuthFailures()
			h.logger.Infow("Token request rejected", "remote_ip", clientIP(r))
		}
		h.handleError(w, r, err)
		return
	}

	h.metrics.IncTokensIssued()
	h.logger.Infow("API token issued", "device", req.DeviceName, "remote_ip", clientIP(r))
	h.jsonResponse(w, http.StatusOK, models.TokenResponse{Token: token, TokenType: "Bearer"})
}
