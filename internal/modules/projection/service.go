// Package projection compounds a monetary amount through sequential annual
// inflation rates, tracking the equivalent nominal amount and a price index
// anchored at 100 entering the start year.
package projection

import (
	"fmt"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
)

// Row is the end-of-year state after applying that year's rate.
type Row struct {
	Year       int     `json:"year"`
	Amount     float64 `json:"nominal_amount_equivalent"`
	PriceIndex float64 `json:"price_index"`
	// Interpolated marks a year with no recorded rate: the walk treats it as
	// a 0% change rather than silently skipping the year.
	Interpolated bool `json:"interpolated,omitempty"`
}

// Result is the full projection. The price index is 100 at the base (the
// start of the first year); every row shows the compounded state after that
// year's rate.
type Result struct {
	Country                string  `json:"country,omitempty"`
	StartYear              int     `json:"start_year"`
	EndYear                int     `json:"end_year"`
	InitialAmount          float64 `json:"initial_amount"`
	FinalAmount            float64 `json:"final_amount"`
	CumulativeInflationPct float64 `json:"cumulative_inflation_pct"`
	Rows                   []Row   `json:"rows"`
}

// Project walks the years start..end in order, compounding the amount by each
// year's rate. Rejects start > end, amount <= 0, and a start year with no
// recorded rate (it seeds the index base) with domain.ErrInvalidRange.
func Project(s domain.Series, start, end int, amount float64) (*Result, error) {
	if start > end {
		return nil, fmt.Errorf("%w: start %d after end %d", domain.ErrInvalidRange, start, end)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %g", domain.ErrInvalidRange, amount)
	}
	if _, ok := s.Rate(start); !ok {
		return nil, fmt.Errorf("%w: no data for start year %d", domain.ErrInvalidRange, start)
	}

	result := &Result{
		StartYear:     start,
		EndYear:       end,
		InitialAmount: amount,
		Rows:          make([]Row, 0, end-start+1),
	}

	current := amount
	index := 100.0
	for year := start; year <= end; year++ {
		rate, ok := s.Rate(year)
		if ok {
			factor := 1 + rate/100
			current *= factor
			index *= factor
		}
		result.Rows = append(result.Rows, Row{
			Year:         year,
			Amount:       current,
			PriceIndex:   index,
			Interpolated: !ok,
		})
	}

	result.FinalAmount = current
	result.CumulativeInflationPct = (current/amount - 1) * 100

	return result, nil
}
