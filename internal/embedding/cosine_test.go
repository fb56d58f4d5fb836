package embedding

import (
	"math"
	"testing"
)

func TestCosine_IdenticalDirection(t *testing.T) {
	a := []float32{1, 2, 3}
	if got := Cosine(a, a); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("identical vectors should give 1, got %v", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	if got := Cosine([]float32{1, 0}, []float32{0, 1}); got != 0 {
		t.Fatalf("orthogonal vectors should give 0, got %v", got)
	}
}

func TestCosine_Opposite(t *testing.T) {
	got := Cosine([]float32{1, 0}, []float32{-1, 0})
	if math.Abs(got+1.0) > 1e-9 {
		t.Fatalf("opposite vectors should give -1, got %v", got)
	}
}

func TestCosine_MismatchedOrEmpty(t *testing.T) {
	if got := Cosine([]float32{1, 2}, []float32{1, 2, 3}); got != 0 {
		t.Fatalf("mismatched lengths should give 0, got %v", got)
	}
	if got := Cosine(nil, nil); got != 0 {
		t.Fatalf("empty vectors should give 0, got %v", got)
	}
}

func TestSimilarity_Remap(t *testing.T) {
	a := []float32{1, 0}

	if got := Similarity(a, a); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("identical vectors should remap to 1, got %v", got)
	}
	if got := Similarity(a, []float32{-1, 0}); math.Abs(got) > 1e-9 {
		t.Fatalf("opposite vectors should remap to 0, got %v", got)
	}
	if got := Similarity(a, []float32{0, 1}); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("orthogonal vectors should remap to 0.5, got %v", got)
	}
}

func TestSimilarity_EmptyIsZeroNotMidpoint(t *testing.T) {
	if got := Similarity(nil, []float32{1, 2}); got != 0.0 {
		t.Fatalf("empty vector must give exactly 0, got %v", got)
	}
	if got := Similarity([]float32{1, 2}, nil); got != 0.0 {
		t.Fatalf("empty vector must give exactly 0, got %v", got)
	}
}
