package dataset

import "math/rand"

// Choice pairs a value with its relative weight.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Distribution is a discrete distribution over a fixed set of values.
// Weights are relative, not percentages.
type Distribution[T any] struct {
	choices []Choice[T]
	total   int
}

func NewDistribution[T any](choices ...Choice[T]) Distribution[T] {
	total := 0
	for _, c := range choices {
		if c.Weight <= 0 {
			panic("dataset: distribution weights must be positive")
		}
		total += c.Weight
	}
	if total == 0 {
		panic("dataset: distribution needs at least one choice")
	}
	return Distribution[T]{choices: choices, total: total}
}

// Pick draws one value, with probability proportional to its weight.
func (d Distribution[T]) Pick(r *rand.Rand) T {
	n := r.Intn(d.total)
	for _, c := range d.choices {
		n -= c.Weight
		if n < 0 {
			return c.Value
		}
	}
	// Unreachable: the loop always consumes the full total.
	return d.choices[len(d.choices)-1].Value
}

// Total returns the sum of all weights.
func (d Distribution[T]) Total() int {
	return d.total
}

// pick returns a uniformly random element of a non-empty slice.
func pick[T any](r *rand.Rand, values []T) T {
	return values[r.Intn(len(values))]
}
