package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rosterboard/roster-api/internal/logic"
	"github.com/rosterboard/roster-api/internal/models"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFrom returns the authenticated caller set by AuthMiddleware.
func PrincipalFrom(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*models.Principal)
	return p, ok && p != nil
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": h.now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]bool{
		"postgres": h.pg != nil && h.pg.Ping(ctx) == nil,
	}
	if h.redis != nil {
		checks["redis"] = h.redis.Ping(ctx).Err() == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

// AuthMiddleware validates bearer tokens
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.errorResponse(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}

		principal, err := h.auth.Authenticate(r.Context(), token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequestLogger logs one line per request.
func (h *Handler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.logger.Infow("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// handleError maps service errors onto the API error taxonomy.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs models.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		h.validationResponse(w, fieldErrs)
	case errors.Is(err, logic.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, logic.ErrUnauthenticated):
		h.errorResponse(w, http.StatusUnauthorized, "Unauthenticated.")
	case errors.Is(err, context.Canceled):
		h.logger.Debugw("Request canceled by client", "path", r.URL.Path)
	default:
		h.logger.Errorw("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warnw("Failed to encode response", "error", err)
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

func (h *Handler) validationResponse(w http.ResponseWriter, errs models.FieldErrors) {
	h.jsonResponse(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "The given data was invalid.",
		"errors": errs,
	})
}
