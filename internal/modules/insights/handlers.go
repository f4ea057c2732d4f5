package insights

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// Handler handles insight HTTP requests
type Handler struct {
	store       *series.Store
	defaultYear int
	defaults    Thresholds
	log         zerolog.Logger
}

// NewHandler creates a new insights handler
func NewHandler(store *series.Store, defaultYear int, defaults Thresholds, log zerolog.Logger) *Handler {
	return &Handler{
		store:       store,
		defaultYear: defaultYear,
		defaults:    defaults,
		log:         log.With().Str("handler", "insights").Logger(),
	}
}

// HandleInsights generates the insight sequence for one year.
// Query params: year, country, high, deflation, trend (threshold overrides).
func (h *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	year := h.defaultYear
	if p := r.URL.Query().Get("year"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		year = v
	}

	th := h.defaults
	if p := r.URL.Query().Get("high"); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			th.HighInflation = v
		}
	}
	if p := r.URL.Query().Get("deflation"); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			th.Deflation = v
		}
	}
	if p := r.URL.Query().Get("trend"); p != "" {
		if v, err := strconv.ParseFloat(p, 64); err == nil {
			th.TrendDelta = v
		}
	}
	if p := r.URL.Query().Get("order"); p != "" {
		order, err := parseOrder(p)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		th.Order = order
	}

	snap := h.store.Snapshot()
	bundle := BundleFromSnapshot(snap, year)

	if code := strings.ToUpper(r.URL.Query().Get("country")); code != "" {
		s, ok := snap.Series(code)
		if !ok {
			h.writeError(w, http.StatusNotFound, "unknown country: "+code)
			return
		}
		bundle.Country = code
		bundle.CountrySeries = s
	}

	out, err := Generate(bundle, th)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeKindError(w, http.StatusUnprocessableEntity, "insufficient_data", err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":       year,
		"thresholds": th,
		"insights":   out,
	})
}

// parseOrder reads a comma-separated priority list of insight kinds.
func parseOrder(raw string) ([]Kind, error) {
	var order []Kind
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		kind, ok := ParseKind(s)
		if !ok {
			return nil, fmt.Errorf("unknown insight kind: %s", s)
		}
		order = append(order, kind)
	}
	return order, nil
}

// BundleFromSnapshot collects one year's rates and the region lookup from a
// snapshot. Shared with the text export handler.
func BundleFromSnapshot(snap *series.Snapshot, year int) Bundle {
	bundle := Bundle{
		Year:    year,
		Rates:   make(map[string]float64),
		Regions: make(map[string]string),
	}
	for _, c := range snap.Countries() {
		bundle.Regions[c.Code] = c.Region
		if s, ok := snap.Series(c.Code); ok {
			if rate, ok := s.Rate(year); ok {
				bundle.Rates[c.Code] = rate
			}
		}
	}
	return bundle
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
