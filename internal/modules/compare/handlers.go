package compare

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// Handler handles comparison HTTP requests
type Handler struct {
	store    *series.Store
	defaults domain.YearRange
	log      zerolog.Logger
}

// NewHandler creates a new compare handler
func NewHandler(store *series.Store, defaults domain.YearRange, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		defaults: defaults,
		log:      log.With().Str("handler", "compare").Logger(),
	}
}

// HandleCompare returns aligned (optionally rebased or smoothed) series for
// up to ten countries. codes is a comma-separated list of ISO3 codes.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	codes := splitCodes(r.URL.Query().Get("codes"))
	if len(codes) == 0 {
		h.writeError(w, http.StatusBadRequest, "codes parameter is required")
		return
	}

	yr := h.yearRange(r)
	opts := Options{
		Normalize: r.URL.Query().Get("normalize") == "true",
		Smooth:    r.URL.Query().Get("smooth") == "true",
	}

	entries, err := Build(h.store.Snapshot().AllSeries(), codes, yr, opts)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEmptySeries):
			h.writeKindError(w, http.StatusUnprocessableEntity, "empty_series", err.Error())
		default:
			h.writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"range":      yr,
		"normalized": opts.Normalize,
		"smoothed":   opts.Smooth && !opts.Normalize,
		"entries":    entries,
	})
}

func splitCodes(raw string) []string {
	var codes []string
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			codes = append(codes, strings.ToUpper(c))
		}
	}
	return codes
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
