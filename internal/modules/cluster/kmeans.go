package cluster

import (
	"fmt"
	"math/rand"

	"github.com/RedValis/macro-inflation-tracker/pkg/formulas"
)

const maxIterations = 100

// fit runs Lloyd's k-means over the vectors with a fixed seed, so the same
// inputs always produce the same partition. Returns one label per vector and
// the final centroids. The narrow signature keeps the numeric routine
// swappable without touching the module's contract.
func fit(vectors [][]float64, k int, seed int64) ([]int, [][]float64, error) {
	n := len(vectors)
	if k < 1 {
		return nil, nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	if n < k {
		return nil, nil, fmt.Errorf("%d vectors cannot form %d clusters", n, k)
	}

	dim := len(vectors[0])
	for _, v := range vectors {
		if len(v) != dim {
			return nil, nil, fmt.Errorf("vectors must have equal length")
		}
	}

	rng := rand.New(rand.NewSource(seed))

	// Forgy init: k distinct vectors picked by the seeded source.
	perm := rng.Perm(n)
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), vectors[perm[i]]...)
	}

	labels := make([]int, n)
	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		for i, v := range vectors {
			best := nearestCentroid(v, centroids)
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		// Recompute centroids; an emptied cluster is reseeded to the point
		// farthest from its current centroid.
		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			counts[labels[i]]++
			for d, x := range v {
				sums[labels[i]][d] += x
			}
		}

		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				centroids[c] = append([]float64(nil), vectors[farthestPoint(vectors, labels, centroids)]...)
				continue
			}
			for d := range sums[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return labels, centroids, nil
}

func nearestCentroid(v []float64, centroids [][]float64) int {
	best := 0
	bestDist := formulas.SquaredDistance(v, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := formulas.SquaredDistance(v, centroids[c]); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func farthestPoint(vectors [][]float64, labels []int, centroids [][]float64) int {
	worst := 0
	worstDist := -1.0
	for i, v := range vectors {
		if d := formulas.SquaredDistance(v, centroids[labels[i]]); d > worstDist {
			worst = i
			worstDist = d
		}
	}
	return worst
}
