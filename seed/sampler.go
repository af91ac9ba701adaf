package seed

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded random source. A zero seed falls back to the
// current time, for non-reproducible runs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Choice pairs a candidate value with its relative weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// WeightedPick draws one value from dist proportionally to the weights:
// r is drawn uniformly in [0, total) and walked down the list. If
// floating-point rounding leaves the walk positive after the last
// element, the last value absorbs the remainder; that fallback is part
// of the contract, not an accident. Panics on an empty distribution.
func WeightedPick[T any](rng *rand.Rand, dist []Choice[T]) T {
	var total float64
	for _, c := range dist {
		total += c.Weight
	}
	r := rng.Float64() * total
	for _, c := range dist {
		r -= c.Weight
		if r <= 0 {
			return c.Value
		}
	}
	return dist[len(dist)-1].Value
}

// RandInt returns a uniform integer in the inclusive range [min, max].
func RandInt(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// PickOne returns a uniformly chosen element. Panics on an empty slice.
func PickOne[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// SampleWithoutReplacement returns up to n distinct elements of items
// in random order, leaving items untouched.
func SampleWithoutReplacement[T any](rng *rand.Rand, items []T, n int) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
