// Package pipeline wires normalization, vectorization, similarity, and
// density clustering into one synchronous call boundary. A Pipeline holds
// only its normalizer and validated parameters; every Run is an independent,
// deterministic function of its input batch.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/cluster"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/similarity"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/vectorize"
)

// Normalizer reduces one raw utterance to its content-lemma sequence.
// textnorm.Normalizer satisfies it; tests may substitute a stub.
type Normalizer interface {
	Normalize(text string) []string
}

// Options are the clustering parameters for one Pipeline.
type Options struct {
	// Eps is the neighborhood radius in cosine-distance units.
	Eps float64

	// MinPoints is the minimum neighborhood size for a core point,
	// counting the point itself.
	MinPoints int

	// Workers bounds the goroutines used for the similarity matrix.
	// Values below 2 keep the build serial.
	Workers int
}

// DefaultOptions returns the conventional clustering parameters.
func DefaultOptions() Options {
	return Options{Eps: 0.5, MinPoints: 2, Workers: 1}
}

// Result is the outcome of one clustering run.
type Result struct {
	RunID        string         `json:"run_id"`
	Fingerprint  string         `json:"fingerprint"`
	Labels       []int          `json:"labels"`
	Groups       cluster.Groups `json:"groups"`
	VocabSize    int            `json:"vocab_size"`
	ClusterCount int            `json:"cluster_count"`
	NoiseCount   int            `json:"noise_count"`
	Duration     time.Duration  `json:"duration_ns"`
}

// Pipeline clusters batches of raw utterances.
type Pipeline struct {
	norm Normalizer
	opts Options
}

// New validates opts and returns a Pipeline. Parameter violations are
// rejected here, before any batch is accepted and before anything is
// computed.
func New(norm Normalizer, opts Options) (*Pipeline, error) {
	if err := cluster.ValidateParams(opts.Eps, opts.MinPoints); err != nil {
		return nil, err
	}
	return &Pipeline{norm: norm, opts: opts}, nil
}

// Run executes the full chain on one batch: normalize, vectorize, build the
// similarity matrix, cluster, aggregate. An empty batch yields an empty
// Result, not an error. A Pipeline is safe for concurrent Runs; nothing is
// shared between invocations.
func (p *Pipeline) Run(ctx context.Context, utterances []string) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:       uuid.NewString(),
		Fingerprint: Fingerprint(utterances, p.opts.Eps, p.opts.MinPoints),
		Labels:      []int{},
		Groups:      cluster.Groups{},
	}
	if len(utterances) == 0 {
		res.Duration = time.Since(start)
		return res, nil
	}

	corpus := make([][]string, len(utterances))
	for i, u := range utterances {
		corpus[i] = p.norm.Normalize(u)
	}

	vocab, vectors := vectorize.FitTransform(corpus)

	matrix, err := similarity.Build(ctx, vectors, p.opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}

	// The clustering points are the similarity-matrix rows, not the raw
	// TF-IDF vectors.
	labels, err := cluster.DBSCAN(matrix, p.opts.Eps, p.opts.MinPoints)
	if err != nil {
		return nil, fmt.Errorf("cluster batch: %w", err)
	}

	groups := cluster.Aggregate(utterances, labels)

	res.Labels = labels
	res.Groups = groups
	res.VocabSize = vocab.Size()
	res.ClusterCount = groups.ClusterCount()
	res.NoiseCount = groups.NoiseCount()
	res.Duration = time.Since(start)

	log.Debug().
		Str("run_id", res.RunID).
		Int("utterances", len(utterances)).
		Int("vocab_size", res.VocabSize).
		Int("clusters", res.ClusterCount).
		Int("noise", res.NoiseCount).
		Dur("duration", res.Duration).
		Msg("Clustering run complete")

	return res, nil
}

// Options returns the parameters the Pipeline was built with.
func (p *Pipeline) Options() Options {
	return p.opts
}
