package series

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

// Handler handles raw series HTTP requests
type Handler struct {
	service  *Service
	store    *Store
	defaults domain.YearRange
	log      zerolog.Logger
}

// NewHandler creates a new series handler
func NewHandler(service *Service, store *Store, defaults domain.YearRange, log zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		store:    store,
		defaults: defaults,
		log:      log.With().Str("handler", "series").Logger(),
	}
}

// HandleListCountries returns every country in the store with its region and
// observation count.
func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"countries": snap.Countries(),
		"source":    snap.Source,
		"loaded_at": snap.LoadedAt,
		"stale":     snap.Stale,
	})
}

// HandleGetSeries returns one country's series, optionally filtered by year range.
func (h *Handler) HandleGetSeries(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	snap := h.store.Snapshot()
	s, ok := snap.Series(code)
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown country: "+code)
		return
	}

	yr := h.yearRange(r)
	if err := yr.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	country, _ := snap.Country(code)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"country": country,
		"range":   yr,
		"points":  s.Slice(yr),
	})
}

// HandleRefresh forces a live re-fetch. On failure the previous data remains
// served and the response flags staleness instead of crashing.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			prev := h.store.Snapshot()
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"error":     err.Error(),
				"stale":     true,
				"records":   prev.Len(),
				"loaded_at": prev.LoadedAt,
			})
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"records":   snap.Len(),
		"countries": len(snap.Countries()),
		"source":    snap.Source,
		"loaded_at": snap.LoadedAt,
	})
}

// yearRange reads from/to query params, falling back to the configured window.
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
