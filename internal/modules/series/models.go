package series

import (
	"sort"
	"time"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

// Snapshot is an immutable view of the raw series table. A snapshot is built
// once from a batch of records and never modified; refreshes build a new one
// and swap it in wholesale.
type Snapshot struct {
	records   []domain.Record
	byCountry map[string]domain.Series
	countries []domain.Country

	LoadedAt time.Time
	Source   string // "cache" or "live"
	Stale    bool   // Last refresh attempt failed; data may be out of date
}

// NewSnapshot builds a snapshot from raw records. Duplicate (country, year)
// pairs collapse to the last record seen, preserving the uniqueness invariant.
func NewSnapshot(records []domain.Record, source string) *Snapshot {
	dedup := make(map[string]map[int]domain.Record)
	names := make(map[string]domain.Record)

	for _, rec := range records {
		if dedup[rec.CountryCode] == nil {
			dedup[rec.CountryCode] = make(map[int]domain.Record)
		}
		dedup[rec.CountryCode][rec.Year] = rec
		names[rec.CountryCode] = rec
	}

	snap := &Snapshot{
		byCountry: make(map[string]domain.Series, len(dedup)),
		LoadedAt:  time.Now(),
		Source:    source,
	}

	codes := make([]string, 0, len(dedup))
	for code := range dedup {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		byYear := dedup[code]
		years := make([]int, 0, len(byYear))
		for year := range byYear {
			years = append(years, year)
		}
		sort.Ints(years)

		s := make(domain.Series, 0, len(years))
		for _, year := range years {
			rec := byYear[year]
			s = append(s, domain.Point{Year: rec.Year, Rate: rec.Rate})
			snap.records = append(snap.records, rec)
		}
		snap.byCountry[code] = s

		info := names[code]
		snap.countries = append(snap.countries, domain.Country{
			Code:         code,
			Name:         info.CountryName,
			Region:       info.Region,
			Observations: len(s),
		})
	}

	return snap
}

// Series returns the inflation history for one country.
func (s *Snapshot) Series(code string) (domain.Series, bool) {
	out, ok := s.byCountry[code]
	return out, ok
}

// AllSeries returns every country's series keyed by country code.
// The map is freshly allocated; the series values are shared and read-only.
func (s *Snapshot) AllSeries() map[string]domain.Series {
	out := make(map[string]domain.Series, len(s.byCountry))
	for code, ser := range s.byCountry {
		out[code] = ser
	}
	return out
}

// Countries lists all countries in code order.
func (s *Snapshot) Countries() []domain.Country {
	return s.countries
}

// Country returns metadata for a single country.
func (s *Snapshot) Country(code string) (domain.Country, bool) {
	for _, c := range s.countries {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Country{}, false
}

// Records returns every record, ordered by country code then year.
func (s *Snapshot) Records() []domain.Record {
	return s.records
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}
