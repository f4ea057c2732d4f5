package projection

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

// Handler handles purchasing-power HTTP requests
type Handler struct {
	store    *series.Store
	defaults domain.YearRange
	log      zerolog.Logger
}

// NewHandler creates a new projection handler
func NewHandler(store *series.Store, defaults domain.YearRange, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		defaults: defaults,
		log:      log.With().Str("handler", "projection").Logger(),
	}
}

// HandleProject compounds an amount through a country's inflation rates.
// Query params: start, end (default to the configured window), amount.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	snap := h.store.Snapshot()
	s, ok := snap.Series(code)
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown country: "+code)
		return
	}

	start, end := h.defaults.From, h.defaults.To
	if p := r.URL.Query().Get("start"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			start = v
		}
	}
	if p := r.URL.Query().Get("end"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			end = v
		}
	}

	amount := 1000.0
	if p := r.URL.Query().Get("amount"); p != "" {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "amount must be a number")
			return
		}
		amount = v
	}

	result, err := Project(s, start, end, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	result.Country = code

	h.writeJSON(w, http.StatusOK, result)
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
