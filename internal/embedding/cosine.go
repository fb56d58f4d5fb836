package embedding

import "math"

// Cosine returns the cosine similarity of a and b in [-1,1]. Mismatched or
// empty vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Similarity remaps cosine similarity from [-1,1] to [0,1]. Empty input on
// either side yields exactly 0, not the midpoint.
func Similarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	return (Cosine(a, b) + 1) / 2
}
