package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/cluster"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/textnorm"
)

// scenarioBatch holds two intent topics with shared vocabulary inside each
// topic and none across them.
var scenarioBatch = []string{
	"How do I reset my password?",
	"What is the process to change my password?",
	"Can you help me with password recovery?",
	"What is the refund policy?",
	"How can I get a refund?",
	"Tell me about your return policy.",
}

func newTestPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	lex, err := textnorm.English(nil, nil)
	require.NoError(t, err)
	p, err := New(textnorm.New(lex, textnorm.DefaultConfig()), opts)
	require.NoError(t, err)
	return p
}

func TestNewRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{name: "zero eps", opts: Options{Eps: 0, MinPoints: 2}, wantErr: cluster.ErrInvalidEps},
		{name: "negative eps", opts: Options{Eps: -1, MinPoints: 2}, wantErr: cluster.ErrInvalidEps},
		{name: "zero minPts", opts: Options{Eps: 0.5, MinPoints: 0}, wantErr: cluster.ErrInvalidMinPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(nil, tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestRunScenario(t *testing.T) {
	p := newTestPipeline(t, Options{Eps: 0.5, MinPoints: 2})

	res, err := p.Run(context.Background(), scenarioBatch)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.Labels)
	assert.Equal(t, 2, res.ClusterCount)
	assert.Equal(t, 0, res.NoiseCount)

	require.Len(t, res.Groups, 2)
	assert.Equal(t, scenarioBatch[:3], res.Groups[0].Utterances)
	assert.Equal(t, scenarioBatch[3:], res.Groups[1].Utterances)

	// reset, password, process, change, recovery, refund, policy, return
	assert.Equal(t, 8, res.VocabSize)
}

func TestRunPartition(t *testing.T) {
	batch := append([]string{}, scenarioBatch...)
	batch = append(batch, "Where is my order tracking number?", "hello there", "")

	p := newTestPipeline(t, Options{Eps: 0.5, MinPoints: 2})
	res, err := p.Run(context.Background(), batch)
	require.NoError(t, err)

	require.Len(t, res.Labels, len(batch))
	var flattened []string
	for _, g := range res.Groups {
		flattened = append(flattened, g.Utterances...)
	}
	assert.ElementsMatch(t, batch, flattened)
	assert.Len(t, flattened, len(batch))
}

func TestRunIdempotent(t *testing.T) {
	p := newTestPipeline(t, Options{Eps: 0.5, MinPoints: 2})

	first, err := p.Run(context.Background(), scenarioBatch)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), scenarioBatch)
	require.NoError(t, err)

	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Groups, second.Groups)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunEmptyBatch(t *testing.T) {
	p := newTestPipeline(t, Options{Eps: 0.5, MinPoints: 2})

	res, err := p.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, res.Labels)
	assert.Empty(t, res.Groups)
	assert.Zero(t, res.ClusterCount)
	assert.Zero(t, res.NoiseCount)
	assert.Zero(t, res.VocabSize)
	assert.NotEmpty(t, res.RunID)
	assert.NotEmpty(t, res.Fingerprint)
}

func TestRunEpsMonotonicity(t *testing.T) {
	// Growing eps can only merge or grow clusters, never split them, so the
	// noise count cannot increase.
	prev := -1
	for _, eps := range []float64{0.3, 0.4, 0.5, 0.7} {
		p := newTestPipeline(t, Options{Eps: eps, MinPoints: 2})
		res, err := p.Run(context.Background(), scenarioBatch)
		require.NoError(t, err)

		if prev >= 0 {
			assert.LessOrEqual(t, res.NoiseCount, prev, "eps=%g", eps)
		}
		prev = res.NoiseCount
	}
	assert.Zero(t, prev)
}

func TestRunDegenerateUtterance(t *testing.T) {
	batch := []string{
		"How do I reset my password?",
		"password reset",
		"hello there", // normalizes to nothing
	}

	// A zero-vector utterance is dissimilar even to itself, so it stays
	// noise no matter how small minPts is.
	for _, minPts := range []int{1, 2} {
		p := newTestPipeline(t, Options{Eps: 0.5, MinPoints: minPts})
		res, err := p.Run(context.Background(), batch)
		require.NoError(t, err)

		assert.Equal(t, []int{0, 0, cluster.Noise}, res.Labels, "minPts=%d", minPts)
		assert.Equal(t, 1, res.NoiseCount, "minPts=%d", minPts)
	}
}

func TestRunAllLexicallyUnique(t *testing.T) {
	batch := []string{"alpha bravo", "charlie delta", "echo foxtrot"}

	p := newTestPipeline(t, Options{Eps: 0.9, MinPoints: 2})
	res, err := p.Run(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, []int{cluster.Noise, cluster.Noise, cluster.Noise}, res.Labels)

	// With minPts 1 every non-zero point is its own core point.
	p = newTestPipeline(t, Options{Eps: 0.9, MinPoints: 1})
	res, err = p.Run(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Labels)
	assert.Zero(t, res.NoiseCount)
}

type fieldsNormalizer struct{}

func (fieldsNormalizer) Normalize(text string) []string {
	return strings.Fields(text)
}

func TestRunWithStubNormalizer(t *testing.T) {
	p, err := New(fieldsNormalizer{}, Options{Eps: 0.5, MinPoints: 2})
	require.NoError(t, err)

	res, err := p.Run(context.Background(), []string{"a b", "a c"})
	require.NoError(t, err)

	assert.Equal(t, 3, res.VocabSize)
	assert.Equal(t, []int{0, 0}, res.Labels)
}

func TestRunParallelWorkersMatchSerial(t *testing.T) {
	serial := newTestPipeline(t, Options{Eps: 0.5, MinPoints: 2, Workers: 1})
	parallel := newTestPipeline(t, Options{Eps: 0.5, MinPoints: 2, Workers: 8})

	a, err := serial.Run(context.Background(), scenarioBatch)
	require.NoError(t, err)
	b, err := parallel.Run(context.Background(), scenarioBatch)
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Groups, b.Groups)
}
