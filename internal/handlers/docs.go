package handlers

import (
	"net/http"

	"github.com/swaggo/swag"
)

// OpenAPI serves the generated API document
// @Summary OpenAPI Document
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /docs/openapi.json [get]
func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Warnw("API documentation unavailable", "error", err)
		h.errorResponse(w, http.StatusNotFound, "API documentation not available")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
