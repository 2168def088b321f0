// Package filter selects the items of a collection that satisfy a predicate.
// Filters only depend on the predicate.Predicate interface, so new predicates
// plug in without any change here.
package filter

import "github.com/papapumpkin/prism/internal/predicate"

// Filter returns the subsequence of items satisfying p. Implementations must
// preserve relative order and must not modify items.
type Filter[T any] interface {
	Filter(items []T, p predicate.Predicate[T]) []T
}

// Linear is a Filter that makes one pass over the input and evaluates the
// predicate exactly once per item.
type Linear[T any] struct{}

// Filter implements Filter. The result is never nil; it is empty when items
// is empty or nothing matches.
func (Linear[T]) Filter(items []T, p predicate.Predicate[T]) []T {
	result := make([]T, 0)
	for _, item := range items {
		if p.IsSatisfied(item) {
			result = append(result, item)
		}
	}
	return result
}

// Apply filters items with a Linear filter.
func Apply[T any](items []T, p predicate.Predicate[T]) []T {
	return Linear[T]{}.Filter(items, p)
}
