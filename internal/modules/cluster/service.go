// Package cluster groups countries by the shape of their inflation history
// using seeded k-means over year-aligned rate vectors.
package cluster

import (
	"fmt"
	"sort"

	"github.com/RedValis/macro-inflation-tracker/internal/domain"
	"github.com/RedValis/macro-inflation-tracker/pkg/formulas"
)

// MaxClusters caps the requested cluster count.
const MaxClusters = 10

// Group is one cluster with its members.
type Group struct {
	ID       int       `json:"id"`
	Members  []string  `json:"members"`
	Centroid []float64 `json:"centroid"`
	MeanRate float64   `json:"mean_rate"` // Mean of the centroid vector
}

// Assignment is the clustering result.
type Assignment struct {
	Labels  map[string]int `json:"labels"`
	Groups  []Group        `json:"groups"`
	Years   []int          `json:"years"`   // Feature years, ascending
	Skipped []string       `json:"skipped"` // Countries excluded for incomplete coverage
}

// Cluster partitions countries by inflation-history shape. Feature vectors
// are the raw in-range rates (no scaling) over the feature years: the
// in-range years observed anywhere in the data. Countries missing any
// feature year are excluded, since k-means needs equal-length vectors.
//
// The seed fixes the random source, so identical inputs always yield the
// identical partition. Fails with domain.ErrInsufficientCountries when fewer
// countries survive filtering than k.
func Cluster(all map[string]domain.Series, yr domain.YearRange, k int, seed int64) (*Assignment, error) {
	if err := yr.Validate(); err != nil {
		return nil, err
	}
	if k < 1 || k > MaxClusters {
		return nil, fmt.Errorf("%w: cluster count %d outside 1..%d", domain.ErrInvalidRange, k, MaxClusters)
	}

	years := featureYears(all, yr)
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: no data in %d..%d", domain.ErrInsufficientCountries, yr.From, yr.To)
	}

	// Deterministic country order: map iteration order must not leak into
	// the result.
	codes := make([]string, 0, len(all))
	for code := range all {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var included []string
	var skipped []string
	var vectors [][]float64
	for _, code := range codes {
		v, ok := vectorFor(all[code], years)
		if !ok {
			skipped = append(skipped, code)
			continue
		}
		included = append(included, code)
		vectors = append(vectors, v)
	}

	if len(included) < k {
		return nil, fmt.Errorf("%w: %d countries with complete coverage, need at least %d",
			domain.ErrInsufficientCountries, len(included), k)
	}

	labels, centroids, err := fit(vectors, k, seed)
	if err != nil {
		return nil, fmt.Errorf("k-means failed: %w", err)
	}

	out := &Assignment{
		Labels:  make(map[string]int, len(included)),
		Years:   years,
		Skipped: skipped,
	}
	for i, code := range included {
		out.Labels[code] = labels[i]
	}

	for c := 0; c < k; c++ {
		group := Group{ID: c, Centroid: centroids[c], MeanRate: formulas.Mean(centroids[c])}
		for i, code := range included {
			if labels[i] == c {
				group.Members = append(group.Members, code)
			}
		}
		out.Groups = append(out.Groups, group)
	}

	return out, nil
}

// featureYears returns the sorted in-range years present in any series.
func featureYears(all map[string]domain.Series, yr domain.YearRange) []int {
	seen := make(map[int]bool)
	for _, s := range all {
		for _, p := range s {
			if yr.Contains(p.Year) {
				seen[p.Year] = true
			}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// vectorFor builds a country's feature vector, or reports incomplete coverage.
func vectorFor(s domain.Series, years []int) ([]float64, bool) {
	v := make([]float64, len(years))
	for i, y := range years {
		rate, ok := s.Rate(y)
		if !ok {
			return nil, false
		}
		v[i] = rate
	}
	return v, true
}
