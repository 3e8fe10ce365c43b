// Package collection provides generic, functional-style slice helpers.
package collection

// Map transforms each element of s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// SumBy folds s into the sum of fn over every element.
func SumBy[T any](s []T, fn func(T) float64) float64 {
	var total float64
	for _, v := range s {
		total += fn(v)
	}
	return total
}

// GroupBy partitions s into a map keyed by the string returned by fn.
// keys preserves first-seen order for deterministic iteration.
func GroupBy[T any](s []T, fn func(T) string) (groups map[string][]T, keys []string) {
	groups = make(map[string][]T)
	for _, v := range s {
		k := fn(v)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], v)
	}
	return groups, keys
}
