package mapdata

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// Handler handles map payload HTTP requests
type Handler struct {
	store       *series.Store
	defaultYear int
	log         zerolog.Logger
}

// NewHandler creates a new map data handler
func NewHandler(store *series.Store, defaultYear int, log zerolog.Logger) *Handler {
	return &Handler{
		store:       store,
		defaultYear: defaultYear,
		log:         log.With().Str("handler", "mapdata").Logger(),
	}
}

// HandleMap returns the map rows for one year. Query params: year.
func (h *Handler) HandleMap(w http.ResponseWriter, r *http.Request) {
	year := h.defaultYear
	if p := r.URL.Query().Get("year"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		year = v
	}

	rows, err := Prepare(h.store.Snapshot(), year)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeKindError(w, http.StatusUnprocessableEntity, "insufficient_data", err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"year": year,
		"rows": rows,
	})
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
