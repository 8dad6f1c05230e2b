// Package cluster implements density-based clustering over cosine distance
// and the grouping of utterances by the resulting labels.
package cluster

import (
	"errors"
	"math"
)

// Noise is the label assigned to points not reachable from any core point.
const Noise = -1

var (
	// ErrInvalidEps is returned when eps is not a positive number.
	ErrInvalidEps = errors.New("cluster: eps must be a positive number")

	// ErrInvalidMinPoints is returned when minPts is below 1.
	ErrInvalidMinPoints = errors.New("cluster: minPts must be at least 1")
)

// ValidateParams checks the clustering parameters without running anything.
func ValidateParams(eps float64, minPts int) error {
	if eps <= 0 || math.IsNaN(eps) {
		return ErrInvalidEps
	}
	if minPts < 1 {
		return ErrInvalidMinPoints
	}
	return nil
}

// DBSCAN clusters the given points using cosine distance, 1 - cos(a, b).
// All points must share one dimension. Labels are 0-based cluster ids in
// discovery order, or Noise.
//
// A point is core when at least minPts points, itself included, lie within
// eps of it. Clusters are the maximal sets reachable from core points;
// border points go to whichever cluster reaches them first. Visitation and
// neighbor scans run in ascending index order, so output is reproducible
// for a fixed input.
//
// Parameters are validated before any computation: eps must be positive and
// minPts at least 1.
func DBSCAN(points [][]float64, eps float64, minPts int) ([]int, error) {
	if err := ValidateParams(eps, minPts); err != nil {
		return nil, err
	}

	n := len(points)
	if n == 0 {
		return nil, nil
	}

	const undefined = 0
	labels := make([]int, n)
	clusterID := 0

	for i := 0; i < n; i++ {
		if labels[i] != undefined {
			continue
		}

		neighbors := rangeQuery(points, i, eps)
		if len(neighbors) < minPts {
			labels[i] = Noise
			continue
		}

		// Start a new cluster.
		clusterID++
		labels[i] = clusterID

		// Seed set: neighbors minus point i.
		seed := make([]int, 0, len(neighbors))
		for _, j := range neighbors {
			if j != i {
				seed = append(seed, j)
			}
		}

		for len(seed) > 0 {
			q := seed[0]
			seed = seed[1:]

			if labels[q] == Noise {
				labels[q] = clusterID
			}
			if labels[q] != undefined {
				continue
			}
			labels[q] = clusterID

			qNeighbors := rangeQuery(points, q, eps)
			if len(qNeighbors) >= minPts {
				seed = append(seed, qNeighbors...)
			}
		}
	}

	// Internal ids are 1-based so that zero can mean undefined.
	for i, l := range labels {
		if l > 0 {
			labels[i] = l - 1
		}
	}
	return labels, nil
}

// rangeQuery returns indices of all points within eps cosine distance of
// points[idx], in ascending index order.
func rangeQuery(points [][]float64, idx int, eps float64) []int {
	var result []int
	q := points[idx]
	for i, p := range points {
		if cosineDistance(q, p) <= eps {
			result = append(result, i)
		}
	}
	return result
}

// cosineDistance returns 1 - cos(a, b). Pairs involving a zero vector get
// similarity 0, so a zero point is at distance 1 from everything, itself
// included, and can never satisfy a neighborhood query.
func cosineDistance(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 1
	}
	return 1 - dot/denom
}
