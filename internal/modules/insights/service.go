// Package insights turns a year's worth of inflation data into an ordered
// sequence of fact records. Each insight is a structured tuple, not a
// formatted string; RenderText produces the plain-text rendering for exports.
package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/pkg/formulas"
)

// Kind classifies an insight.
type Kind string

const (
	KindDeflation       Kind = "deflation"
	KindHighInflation   Kind = "high_inflation"
	KindRegionalExtreme Kind = "regional_extreme"
	KindCountryTrend    Kind = "country_trend"
	KindGeneralAverage  Kind = "general_average"
)

// DefaultOrder is the priority used when Thresholds.Order is empty: alerts
// first, then the regional extreme, the country trend, and the average.
var DefaultOrder = []Kind{
	KindDeflation,
	KindHighInflation,
	KindRegionalExtreme,
	KindCountryTrend,
	KindGeneralAverage,
}

// ParseKind resolves a kind name, for callers taking the order as input.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindDeflation, KindHighInflation, KindRegionalExtreme, KindCountryTrend, KindGeneralAverage:
		return Kind(s), true
	}
	return "", false
}

// Thresholds are the tunable cutoffs and the priority order. Callers always
// pass them explicitly; nothing in this package hard-codes a cutoff.
type Thresholds struct {
	HighInflation float64 // Rates strictly above this trigger a high-inflation alert
	Deflation     float64 // Rates strictly below this trigger a deflation alert
	TrendDelta    float64 // Minimum recent-vs-earlier mean gap to call a trend
	Order         []Kind  // Priority order of the output; empty means DefaultOrder
}

// Insight is one generated fact. Which fields are meaningful depends on Kind:
// alert kinds carry Count and the threshold in Value, the regional extreme
// carries the region in Subject and its average in Value, the country trend
// carries the direction and the mean delta.
type Insight struct {
	Kind      Kind    `json:"kind"`
	Subject   string  `json:"subject,omitempty"`
	Value     float64 `json:"value"`
	Count     int     `json:"count,omitempty"`
	Year      int     `json:"year"`
	Direction string  `json:"direction,omitempty"`
}

// Bundle is everything Generate looks at: the selected year's rate per
// country, each country's region, and optionally one country's full history
// for the trend comparison.
type Bundle struct {
	Year          int
	Rates         map[string]float64
	Regions       map[string]string
	Country       string
	CountrySeries domain.Series
}

// Generate produces the insight sequence for a bundle, ordered by
// th.Order (DefaultOrder when empty). Kinds missing from the order rank
// last, in their DefaultOrder positions. Insights whose precondition does
// not hold are omitted rather than emitted empty. Fails with
// domain.ErrInsufficientData when the bundle carries no rates at all.
func Generate(b Bundle, th Thresholds) ([]Insight, error) {
	if len(b.Rates) == 0 {
		return nil, fmt.Errorf("%w: no observations for year %d", domain.ErrInsufficientData, b.Year)
	}

	out := make([]Insight, 0, 5)

	deflation, high := 0, 0
	for _, rate := range b.Rates {
		if rate < th.Deflation {
			deflation++
		}
		if rate > th.HighInflation {
			high++
		}
	}
	if deflation > 0 {
		out = append(out, Insight{Kind: KindDeflation, Value: th.Deflation, Count: deflation, Year: b.Year})
	}
	if high > 0 {
		out = append(out, Insight{Kind: KindHighInflation, Value: th.HighInflation, Count: high, Year: b.Year})
	}

	if region, avg, ok := hottestRegion(b.Rates, b.Regions); ok {
		out = append(out, Insight{Kind: KindRegionalExtreme, Subject: region, Value: avg, Year: b.Year})
	}

	if b.Country != "" {
		if direction, delta, ok := trend(b.CountrySeries, th.TrendDelta); ok {
			out = append(out, Insight{
				Kind:      KindCountryTrend,
				Subject:   b.Country,
				Value:     delta,
				Year:      b.Year,
				Direction: direction,
			})
		}
	}

	all := make([]float64, 0, len(b.Rates))
	for _, rate := range b.Rates {
		all = append(all, rate)
	}
	out = append(out, Insight{
		Kind:  KindGeneralAverage,
		Value: formulas.Mean(all),
		Count: len(all),
		Year:  b.Year,
	})

	sortByPriority(out, th.Order)
	return out, nil
}

// sortByPriority orders insights by the caller's priority list. Kinds absent
// from the list rank after every listed kind, keeping their DefaultOrder
// positions relative to each other.
func sortByPriority(out []Insight, order []Kind) {
	if len(order) == 0 {
		order = DefaultOrder
	}
	rank := func(k Kind) int {
		for i, o := range order {
			if o == k {
				return i
			}
		}
		for i, o := range DefaultOrder {
			if o == k {
				return len(order) + i
			}
		}
		return len(order) + len(DefaultOrder)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Kind) < rank(out[j].Kind)
	})
}

// hottestRegion finds the region with the highest average rate. Countries
// without a known region are ignored; ties break to the lexicographically
// smallest region name for determinism.
func hottestRegion(rates map[string]float64, regions map[string]string) (string, float64, bool) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for code, rate := range rates {
		region := regions[code]
		if region == "" {
			continue
		}
		sums[region] += rate
		counts[region]++
	}
	if len(sums) == 0 {
		return "", 0, false
	}

	names := make([]string, 0, len(sums))
	for region := range sums {
		names = append(names, region)
	}
	sort.Strings(names)

	best := names[0]
	bestAvg := sums[best] / float64(counts[best])
	for _, region := range names[1:] {
		if avg := sums[region] / float64(counts[region]); avg > bestAvg {
			best, bestAvg = region, avg
		}
	}
	return best, bestAvg, true
}

// trend compares the mean of the last up-to-3 points against the first
// up-to-3 points. Needs at least two points; the direction is "rising" or
// "falling" only when the gap exceeds delta, otherwise "stable".
func trend(s domain.Series, delta float64) (string, float64, bool) {
	if len(s) < 2 {
		return "", 0, false
	}

	window := 3
	if len(s) < window {
		window = 2
	}
	recent := formulas.Mean(s.Rates()[len(s)-window:])
	earlier := formulas.Mean(s.Rates()[:window])
	diff := recent - earlier

	switch {
	case diff > delta:
		return "rising", diff, true
	case diff < -delta:
		return "falling", diff, true
	default:
		return "stable", diff, true
	}
}

// RenderText renders insights as plain text, one line per insight, for the
// text export surface.
func RenderText(insights []Insight) string {
	var b strings.Builder
	for _, in := range insights {
		switch in.Kind {
		case KindDeflation:
			fmt.Fprintf(&b, "Deflation alert: %d countries recorded inflation below %.1f%% in %d.\n",
				in.Count, in.Value, in.Year)
		case KindHighInflation:
			fmt.Fprintf(&b, "High inflation alert: %d countries exceeded %.1f%% in %d.\n",
				in.Count, in.Value, in.Year)
		case KindRegionalExtreme:
			fmt.Fprintf(&b, "Regional extreme: %s has the highest average inflation (%.2f%%) in %d.\n",
				in.Subject, in.Value, in.Year)
		case KindCountryTrend:
			fmt.Fprintf(&b, "Trend: inflation in %s has been %s over the available period (%+.2f pp).\n",
				in.Subject, in.Direction, in.Value)
		case KindGeneralAverage:
			fmt.Fprintf(&b, "Average inflation across %d countries in %d: %.2f%%.\n",
				in.Count, in.Year, in.Value)
		}
	}
	return b.String()
}
