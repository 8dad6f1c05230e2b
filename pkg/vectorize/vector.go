package vectorize

import "math"

// Vector is a sparse feature vector stored as parallel arrays of vocabulary
// column indices and weights. Indices are sorted ascending.
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// IsZero reports whether the vector has no nonzero weights.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// Dot returns the inner product of two sparse vectors via a merge join over
// their sorted index arrays.
func (v Vector) Dot(w Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(w.Indices) {
		switch {
		case v.Indices[i] < w.Indices[j]:
			i++
		case v.Indices[i] > w.Indices[j]:
			j++
		default:
			sum += v.Values[i] * w.Values[j]
			i++
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// l2Normalize scales the vector to unit length in place. Zero vectors are
// left unchanged.
func (v Vector) l2Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= n
	}
}
