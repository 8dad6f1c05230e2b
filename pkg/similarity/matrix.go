// Package similarity computes pairwise cosine similarity over a batch of
// TF-IDF vectors.
package similarity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/vectorize"
)

// Matrix is the dense N x N cosine similarity matrix for one batch. It is
// symmetric, with entries in [0, 1] for non-negative TF-IDF weights. The row
// and column of a zero vector are all zero, including its diagonal entry.
type Matrix [][]float64

// Build computes the similarity matrix for the given vectors. Vectors are
// unit length or zero after vectorization, so cosine reduces to the dot
// product; the zero-vector convention makes an empty utterance maximally
// dissimilar to everything, itself included. workers above 1 shards rows
// across goroutines; each matrix entry is written by exactly one goroutine,
// and the result is identical to the serial computation.
func Build(ctx context.Context, vectors []vectorize.Vector, workers int) (Matrix, error) {
	n := len(vectors)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	if n == 0 {
		return m, nil
	}

	fillRow := func(i int) {
		if vectors[i].IsZero() {
			return
		}
		m[i][i] = 1
		for j := i + 1; j < n; j++ {
			if vectors[j].IsZero() {
				continue
			}
			s := vectors[i].Dot(vectors[j])
			m[i][j] = s
			m[j][i] = s
		}
	}

	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			fillRow(i)
		}
		return m, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i // per-iteration copy; go.mod predates Go 1.22 loop scoping
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fillRow(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}
