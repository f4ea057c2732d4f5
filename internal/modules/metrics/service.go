// Package metrics computes per-country scalar statistics and the rolling
// average transform. Everything is a pure function of the series it is given:
// stats are recomputed fresh on every request, never cached.
package metrics

import (
	"fmt"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/pkg/formulas"
)

// DefaultRollingWindow matches the dashboard's 3-year smoothing toggle.
const DefaultRollingWindow = 3

// Extreme is the rate at the year where an extreme occurred.
type Extreme struct {
	Rate float64 `json:"rate"`
	Year int     `json:"year"`
}

// Stats holds the derived statistics for one country over a year range.
type Stats struct {
	Current *float64 `json:"current"` // Rate at the range's last year, absent if missing
	Average float64  `json:"average"`
	StdDev  float64  `json:"stddev"` // Population standard deviation (volatility)
	Max     Extreme  `json:"max"`
	Min     Extreme  `json:"min"`
	Count   int      `json:"count"`
}

// Derive computes statistics over the in-range points of a series. Absent
// years contribute nothing. Fails with domain.ErrInsufficientData when no
// point falls within the range.
func Derive(s domain.Series, yr domain.YearRange) (*Stats, error) {
	if err := yr.Validate(); err != nil {
		return nil, err
	}

	in := s.Slice(yr)
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: no points in %d..%d", domain.ErrInsufficientData, yr.From, yr.To)
	}

	stats := &Stats{
		Average: formulas.Mean(in.Rates()),
		StdDev:  formulas.PopStdDev(in.Rates()),
		Max:     Extreme{Rate: in[0].Rate, Year: in[0].Year},
		Min:     Extreme{Rate: in[0].Rate, Year: in[0].Year},
		Count:   len(in),
	}

	// Strict comparisons keep the earliest year on ties.
	for _, p := range in[1:] {
		if p.Rate > stats.Max.Rate {
			stats.Max = Extreme{Rate: p.Rate, Year: p.Year}
		}
		if p.Rate < stats.Min.Rate {
			stats.Min = Extreme{Rate: p.Rate, Year: p.Year}
		}
	}

	if rate, ok := s.Rate(yr.To); ok {
		stats.Current = &rate
	}

	return stats, nil
}

// Rolling smooths a series with a moving-window mean. The output keeps the
// input's years and length; positions near the start average only the points
// available so far.
func Rolling(s domain.Series, window int) domain.Series {
	smoothed := formulas.RollingMean(s.Rates(), window)

	out := make(domain.Series, len(s))
	for i, p := range s {
		out[i] = domain.Point{Year: p.Year, Rate: smoothed[i]}
	}
	return out
}
