package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/compare"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/insights"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/series"
)

// Handler handles file export HTTP requests
type Handler struct {
	store      *series.Store
	defaults   domain.YearRange
	thresholds insights.Thresholds
	log        zerolog.Logger
}

// NewHandler creates a new export handler
func NewHandler(store *series.Store, defaults domain.YearRange, thresholds insights.Thresholds, log zerolog.Logger) *Handler {
	return &Handler{
		store:      store,
		defaults:   defaults,
		thresholds: thresholds,
		log:        log.With().Str("handler", "export").Logger(),
	}
}

// HandleExportSeries streams one country's full records as CSV.
func (h *Handler) HandleExportSeries(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	snap := h.store.Snapshot()
	country, ok := snap.Country(code)
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown country: "+code)
		return
	}
	s, _ := snap.Series(code)

	records := make([]domain.Record, len(s))
	for i, p := range s {
		records[i] = domain.Record{
			CountryCode: country.Code,
			CountryName: country.Name,
			Region:      country.Region,
			Year:        p.Year,
			Rate:        p.Rate,
		}
	}

	var buf bytes.Buffer
	if err := RecordsCSV(&buf, records); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeFile(w, buf.Bytes(), "text/csv", code+".csv")
}

// HandleExportCompare streams a comparison set as CSV. Accepts the same
// query parameters as the compare endpoint.
func (h *Handler) HandleExportCompare(w http.ResponseWriter, r *http.Request) {
	codes := splitCodes(r.URL.Query().Get("codes"))
	if len(codes) == 0 {
		h.writeError(w, http.StatusBadRequest, "codes parameter is required")
		return
	}

	yr := h.yearRange(r)
	opts := compare.Options{
		Normalize: r.URL.Query().Get("normalize") == "true",
		Smooth:    r.URL.Query().Get("smooth") == "true",
	}

	entries, err := compare.Build(h.store.Snapshot().AllSeries(), codes, yr, opts)
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

	var buf bytes.Buffer
	if err := CompareCSV(&buf, entries); err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeFile(w, buf.Bytes(), "text/csv", "compare.csv")
}

// HandleExportInsights streams the rendered insight lines as plain text.
// Query params: year, country.
func (h *Handler) HandleExportInsights(w http.ResponseWriter, r *http.Request) {
	year := h.defaults.To
	if p := r.URL.Query().Get("year"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		year = v
	}

	snap := h.store.Snapshot()
	bundle := insights.BundleFromSnapshot(snap, year)
	if code := strings.ToUpper(r.URL.Query().Get("country")); code != "" {
		s, ok := snap.Series(code)
		if !ok {
			h.writeError(w, http.StatusNotFound, "unknown country: "+code)
			return
		}
		bundle.Country = code
		bundle.CountrySeries = s
	}

	out, err := insights.Generate(bundle, h.thresholds)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			h.writeKindError(w, http.StatusUnprocessableEntity, "insufficient_data", err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeFile(w, []byte(insights.RenderText(out)), "text/plain; charset=utf-8", "insights.txt")
}

func (h *Handler) writeFile(w http.ResponseWriter, body []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.log.Error().Err(err).Msg("Failed to write export body")
	}
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
