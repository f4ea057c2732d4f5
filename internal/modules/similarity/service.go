// Package similarity ranks countries by how closely their inflation history
// tracks a query country's, using cosine similarity over year-aligned vectors.
package similarity

import (
	"fmt"
	"sort"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/pkg/formulas"
)

// DefaultLimit matches the dashboard's "top 5 similar countries" panel.
const DefaultLimit = 5

// minOverlap is the fewest overlapping years for a meaningful cosine score.
const minOverlap = 2

// Match is one ranked country. Score is in [-1, 1].
type Match struct {
	Code    string  `json:"code"`
	Score   float64 `json:"score"`
	Overlap int     `json:"overlap"` // Number of shared years behind the score
}

// Rank scores every other country against the query country and returns them
// in descending score order, ties broken by country code ascending. The query
// country never appears in its own ranking.
//
// Vectors are aligned on the years where the query has in-range data;
// candidates covering fewer than two of those years, and constant-zero
// vectors (undefined cosine), are excluded rather than erroring. limit <= 0
// means no limit.
func Rank(query string, all map[string]domain.Series, yr domain.YearRange, limit int) ([]Match, error) {
	if err := yr.Validate(); err != nil {
		return nil, err
	}

	base := all[query].Slice(yr)
	if len(base) < minOverlap {
		return nil, fmt.Errorf("%w: %s has %d points in %d..%d, need at least %d",
			domain.ErrInsufficientData, query, len(base), yr.From, yr.To, minOverlap)
	}

	matches := make([]Match, 0, len(all))
	for code, s := range all {
		if code == query {
			continue
		}

		a, b := overlapVectors(base, s)
		if len(a) < minOverlap {
			continue
		}

		score, ok := formulas.CosineSimilarity(a, b)
		if !ok || !formulas.IsFinite(score) {
			continue
		}

		matches = append(matches, Match{Code: code, Score: score, Overlap: len(a)})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Code < matches[j].Code
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// overlapVectors builds two aligned rate vectors over the years present in
// both series. base is already range-filtered and sorted; other is probed per
// year.
func overlapVectors(base domain.Series, other domain.Series) ([]float64, []float64) {
	a := make([]float64, 0, len(base))
	b := make([]float64, 0, len(base))
	for _, p := range base {
		if rate, ok := other.Rate(p.Year); ok {
			a = append(a, p.Rate)
			b = append(b, rate)
		}
	}
	return a, b
}
