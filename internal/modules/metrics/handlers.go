package metrics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// Handler handles derived statistics HTTP requests
type Handler struct {
	store    *series.Store
	defaults domain.YearRange
	log      zerolog.Logger
}

// NewHandler creates a new metrics handler
func NewHandler(store *series.Store, defaults domain.YearRange, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		defaults: defaults,
		log:      log.With().Str("handler", "metrics").Logger(),
	}
}

// HandleGetStats returns derived statistics for one country. With smooth=true
// the response also carries the rolling-average series.
func (h *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	snap := h.store.Snapshot()
	s, ok := snap.Series(code)
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown country: "+code)
		return
	}

	yr := h.yearRange(r)
	stats, err := Derive(s, yr)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientData):
			h.writeKindError(w, http.StatusUnprocessableEntity, "insufficient_data", err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := map[string]interface{}{
		"country": code,
		"range":   yr,
		"stats":   stats,
	}
	if r.URL.Query().Get("smooth") == "true" {
		resp["smoothed"] = Rolling(s.Slice(yr), DefaultRollingWindow)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) yearRange(r *http.Request) domain.YearRange {
	yr := h.defaults
	if p := r.URL.Query().Get("from"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			yr.From = v
		}
	}
	if p := r.URL.Query().Get("to"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			yr.To = v
		}
	}
	return yr
}

// Helper methods

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) writeKindError(w http.ResponseWriter, status int, kind, message string) {
	h.writeJSON(w, status, map[string]string{"error": message, "kind": kind})
}
