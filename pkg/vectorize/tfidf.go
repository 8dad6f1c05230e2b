// Package vectorize learns a TF-IDF model over a normalized corpus and
// encodes each utterance as a sparse, L2-normalized weight vector.
package vectorize

import (
	"math"
	"sort"
)

// Vocabulary maps the distinct terms of one corpus to dense column indices,
// in lexicographic term order, together with the inverse document
// frequencies needed to weight later batches. It is immutable once built;
// thread it explicitly into any later Transform call.
type Vocabulary struct {
	terms []string
	index map[string]int
	idf   []float64
	docs  int
}

// FitTransform builds the Vocabulary for the corpus and encodes every token
// sequence against it. Weights are raw term frequency times smoothed inverse
// document frequency, ln((1+N)/(1+df))+1, and each vector is L2-normalized.
// A sequence with no terms yields the zero vector.
func FitTransform(corpus [][]string) (*Vocabulary, []Vector) {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(corpus))
	for col, t := range terms {
		index[t] = col
		idf[col] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vocab := &Vocabulary{terms: terms, index: index, idf: idf, docs: len(corpus)}
	vectors := make([]Vector, len(corpus))
	for i, doc := range corpus {
		vectors[i] = vocab.Transform(doc)
	}
	return vocab, vectors
}

// Transform encodes one token sequence against the fitted vocabulary. Terms
// unseen during fit contribute nothing; a sequence with no known terms
// yields the zero vector.
func (v *Vocabulary) Transform(tokens []string) Vector {
	tf := make(map[int]float64, len(tokens))
	for _, t := range tokens {
		if col, ok := v.index[t]; ok {
			tf[col]++
		}
	}
	if len(tf) == 0 {
		return Vector{}
	}

	cols := make([]int, 0, len(tf))
	for col := range tf {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	vec := Vector{Indices: cols, Values: make([]float64, len(cols))}
	for i, col := range cols {
		vec.Values[i] = tf[col] * v.idf[col]
	}
	vec.l2Normalize()
	return vec
}

// Size returns the number of distinct terms.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}

// Terms returns the vocabulary terms in column order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Index returns the column index for term t, if present.
func (v *Vocabulary) Index(t string) (int, bool) {
	col, ok := v.index[t]
	return col, ok
}

// IDF returns the smoothed inverse document frequency for column col.
func (v *Vocabulary) IDF(col int) float64 {
	return v.idf[col]
}

// DocCount returns the corpus size the vocabulary was fitted on.
func (v *Vocabulary) DocCount() int {
	return v.docs
}
