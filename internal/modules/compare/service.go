// Package compare aligns multiple countries' series for cross-country
// comparison, optionally rebasing each to a compounded level index anchored
// at 100 in that country's first in-range year.
package compare

import (
	"fmt"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/internal/modules/metrics"
	"github.com/RedValis/macro-inflation-tracker/pkg/formulas"
)

// MaxCountries caps a comparison set.
const MaxCountries = 10

// Options controls the comparison transform.
type Options struct {
	// Normalize rebases each country to a compounded level index (base 100 at
	// its first in-range year). The input rates are year-over-year growth
	// rates, so the index compounds; it is not a naive rescale.
	Normalize bool
	// Smooth applies a 3-year rolling average to the raw rates. Ignored when
	// Normalize is set: an index built from smoothed rates would misstate the
	// cumulative level.
	Smooth bool
}

// Entry is one country's column in a comparison set. Points hold raw rates,
// smoothed rates, or index levels depending on the options. Alignment across
// entries is by calendar year; gaps stay gaps, and countries are never forced
// onto a common x-origin.
type Entry struct {
	Code     string        `json:"code"`
	BaseYear *int          `json:"base_year,omitempty"` // Set when normalized
	Points   domain.Series `json:"points"`
}

// Build produces a comparison set for the given country codes, preserving
// their order. Fails with domain.ErrEmptySeries when any selected country has
// no in-range points.
func Build(all map[string]domain.Series, codes []string, yr domain.YearRange, opts Options) ([]Entry, error) {
	if err := yr.Validate(); err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: no countries selected", domain.ErrEmptySeries)
	}
	if len(codes) > MaxCountries {
		return nil, fmt.Errorf("%w: %d countries selected, maximum is %d", domain.ErrInvalidRange, len(codes), MaxCountries)
	}

	out := make([]Entry, 0, len(codes))
	for _, code := range codes {
		in := all[code].Slice(yr)
		if len(in) == 0 {
			return nil, fmt.Errorf("%w: %s has no points in %d..%d", domain.ErrEmptySeries, code, yr.From, yr.To)
		}

		entry := Entry{Code: code, Points: in}

		switch {
		case opts.Normalize:
			index := formulas.CompoundIndex(in.Rates())
			points := make(domain.Series, len(in))
			for i, p := range in {
				points[i] = domain.Point{Year: p.Year, Rate: index[i]}
			}
			base := in[0].Year
			entry.BaseYear = &base
			entry.Points = points
		case opts.Smooth:
			entry.Points = metrics.Rolling(in, metrics.DefaultRollingWindow)
		}

		out = append(out, entry)
	}

	return out, nil
}
