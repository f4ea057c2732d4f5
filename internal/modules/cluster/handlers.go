package cluster

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// DefaultClusters matches the dashboard's default grouping.
const DefaultClusters = 4

// Handler handles clustering HTTP requests
type Handler struct {
	store    *series.Store
	defaults domain.YearRange
	seed     int64
	log      zerolog.Logger
}

// NewHandler creates a new cluster handler
func NewHandler(store *series.Store, defaults domain.YearRange, seed int64, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		defaults: defaults,
		seed:     seed,
		log:      log.With().Str("handler", "cluster").Logger(),
	}
}

// HandleCluster groups countries by inflation-history shape.
func (h *Handler) HandleCluster(w http.ResponseWriter, r *http.Request) {
	k := DefaultClusters
	if p := r.URL.Query().Get("k"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			k = v
		}
	}

	yr := h.yearRange(r)
	assignment, err := Cluster(h.store.Snapshot().AllSeries(), yr, k, h.seed)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientCountries):
			h.writeKindError(w, http.StatusUnprocessableEntity, "insufficient_countries", err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"range":      yr,
		"k":          k,
		"assignment": assignment,
	})
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
