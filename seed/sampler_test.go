package seed

import (
	"math"
	"testing"
)

// TestWeightedPick_Convergence draws 100k samples from {A:25, B:50, C:25}
// and checks the observed frequency of B against the law of large numbers.
func TestWeightedPick_Convergence(t *testing.T) {
	rng := NewRand(1)
	dist := []Choice[string]{
		{Value: "A", Weight: 25},
		{Value: "B", Weight: 50},
		{Value: "C", Weight: 25},
	}

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[WeightedPick(rng, dist)]++
	}

	if counts["A"]+counts["B"]+counts["C"] != draws {
		t.Fatalf("picks outside the distribution: %v", counts)
	}
	got := float64(counts["B"]) / draws
	if math.Abs(got-0.50) > 0.02 {
		t.Errorf("frequency of B = %.4f, want 0.50 ± 0.02", got)
	}
}

// TestWeightedPick_SingleValue verifies a one-element distribution is
// always returned, exercising the last-value fallback path as well.
func TestWeightedPick_SingleValue(t *testing.T) {
	rng := NewRand(2)
	dist := []Choice[string]{{Value: "only", Weight: 1}}
	for i := 0; i < 100; i++ {
		if got := WeightedPick(rng, dist); got != "only" {
			t.Fatalf("WeightedPick() = %v, want %v", got, "only")
		}
	}
}

func TestRandInt_Bounds(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 1000; i++ {
		got := RandInt(rng, -30, 90)
		if got < -30 || got > 90 {
			t.Fatalf("RandInt(-30, 90) = %d, out of range", got)
		}
	}
	// Degenerate range has only one possible value.
	if got := RandInt(rng, 4, 4); got != 4 {
		t.Errorf("RandInt(4, 4) = %d, want 4", got)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	rng := NewRand(4)
	items := []int{1, 2, 3, 4, 5}

	picked := SampleWithoutReplacement(rng, items, 3)
	if len(picked) != 3 {
		t.Fatalf("len = %d, want 3", len(picked))
	}
	seen := map[int]bool{}
	for _, p := range picked {
		if seen[p] {
			t.Fatalf("value %d picked twice", p)
		}
		seen[p] = true
	}

	// Asking for more than available returns everything once.
	all := SampleWithoutReplacement(rng, items, 10)
	if len(all) != len(items) {
		t.Errorf("len = %d, want %d", len(all), len(items))
	}

	// The input slice must not be reordered.
	for i, v := range []int{1, 2, 3, 4, 5} {
		if items[i] != v {
			t.Fatalf("input slice mutated: %v", items)
		}
	}
}
