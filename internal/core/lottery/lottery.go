// Package lottery orders competing candidates by weighted random draws.
package lottery

import "math/rand/v2"

type entry[T comparable] struct {
	item   T
	weight float64
}

// Draw picks up to n distinct candidates without replacement. At every step
// a remaining candidate is drawn with probability weight/total-remaining.
// Candidates with a non-positive weight are never drawn. When fewer than n
// candidates qualify, all of them are returned in draw order.
//
// r may be nil, in which case the goroutine-safe global source is used.
// Draw keeps no state between calls.
func Draw[T comparable](r *rand.Rand, weights map[T]float64, n int) []T {
	if n <= 0 || len(weights) == 0 {
		return nil
	}

	pool := make([]entry[T], 0, len(weights))
	var total float64
	for item, w := range weights {
		if w > 0 {
			pool = append(pool, entry[T]{item: item, weight: w})
			total += w
		}
	}

	float := rand.Float64
	if r != nil {
		float = r.Float64
	}

	out := make([]T, 0, min(n, len(pool)))
	for len(pool) > 0 && len(out) < n {
		i := pick(pool, total, float())
		out = append(out, pool[i].item)
		total -= pool[i].weight
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		if total <= 0 {
			total = sum(pool)
		}
	}
	return out
}

// pick returns the index whose cumulative weight range holds u*total.
// Rounding can leave the target just past the last range; the last entry
// absorbs it.
func pick[T comparable](pool []entry[T], total, u float64) int {
	target := u * total
	var acc float64
	for i, e := range pool {
		acc += e.weight
		if target < acc {
			return i
		}
	}
	return len(pool) - 1
}

func sum[T comparable](pool []entry[T]) float64 {
	var total float64
	for _, e := range pool {
		total += e.weight
	}
	return total
}
