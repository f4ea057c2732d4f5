// Package domain holds the core data model shared by all analytics modules.
// Everything here is a plain value type: records are immutable once loaded,
// and every transformation produces a new value instead of mutating inputs.
package domain

import "fmt"

// Record is a single observation: one country, one year, one inflation rate.
// At most one record exists per (CountryCode, Year).
type Record struct {
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name"`
	Region      string  `json:"region"`
	Year        int     `json:"year"`
	Rate        float64 `json:"rate"`
}

// Point is one (year, rate) pair within a country's series.
type Point struct {
	Year int     `json:"year"`
	Rate float64 `json:"rate"`
}

// Series is a single country's inflation history, sorted ascending by year
// with no duplicate years. Gaps are allowed: a missing year is simply absent,
// and callers must not assume contiguity.
type Series []Point

// Rate returns the rate at the given year, if present.
func (s Series) Rate(year int) (float64, bool) {
	for _, p := range s {
		if p.Year == year {
			return p.Rate, true
		}
		if p.Year > year {
			break
		}
	}
	return 0, false
}

// Slice returns the points falling within the inclusive year range.
// The result shares no memory with the receiver.
func (s Series) Slice(yr YearRange) Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if yr.Contains(p.Year) {
			out = append(out, p)
		}
	}
	return out
}

// Rates returns just the rate values, in year order.
func (s Series) Rates() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Rate
	}
	return out
}

// YearRange is an inclusive [From, To] span of calendar years.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether the year falls within the range.
func (yr YearRange) Contains(year int) bool {
	return year >= yr.From && year <= yr.To
}

// Validate rejects inverted ranges before any computation runs.
func (yr YearRange) Validate() error {
	if yr.From > yr.To {
		return fmt.Errorf("%w: year range %d..%d is inverted", ErrInvalidRange, yr.From, yr.To)
	}
	return nil
}

// Country identifies one country in the store.
type Country struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Region       string `json:"region"`
	Observations int    `json:"observations"`
}
