package vector

import "gonum.org/v1/gonum/floats"

// Dot returns the dot product of two embeddings. Face engine embeddings are
// unit-normalized, so this equals their cosine similarity. Mismatched or
// empty vectors score 0.
func Dot(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b)
}
