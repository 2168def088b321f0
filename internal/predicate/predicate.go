// Package predicate provides the composable boolean tests used to select
// items from a collection. A Predicate holds only the parameters it was built
// with; evaluating it never mutates the item and always yields the same
// answer for the same input.
//
// New predicates are added by implementing the interface. Nothing that
// consumes predicates (filters, chains, other combinators) changes when a new
// one appears.
package predicate

import (
	"fmt"
	"strings"
)

// Predicate reports whether an item satisfies a condition.
type Predicate[T any] interface {
	IsSatisfied(item T) bool
}

// Func adapts an ordinary function to a Predicate.
type Func[T any] func(item T) bool

// IsSatisfied calls f(item).
func (f Func[T]) IsSatisfied(item T) bool {
	return f(item)
}

// Describe returns a human-readable description of p. Predicates that
// implement fmt.Stringer describe themselves; anything else is named by its
// Go type.
func Describe[T any](p Predicate[T]) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}

// and is the binary conjunction returned by And.
type and[T any] struct {
	first, second Predicate[T]
}

// And returns a predicate satisfied when both first and second are.
// second is not evaluated when first is false.
func And[T any](first, second Predicate[T]) Predicate[T] {
	mustNotBeNil("And", first, second)
	return and[T]{first: first, second: second}
}

func (p and[T]) IsSatisfied(item T) bool {
	return p.first.IsSatisfied(item) && p.second.IsSatisfied(item)
}

func (p and[T]) String() string {
	return Describe(p.first) + " and " + Describe(p.second)
}

// or is the binary disjunction returned by Or.
type or[T any] struct {
	first, second Predicate[T]
}

// Or returns a predicate satisfied when either first or second is.
// second is not evaluated when first is true.
func Or[T any](first, second Predicate[T]) Predicate[T] {
	mustNotBeNil("Or", first, second)
	return or[T]{first: first, second: second}
}

func (p or[T]) IsSatisfied(item T) bool {
	return p.first.IsSatisfied(item) || p.second.IsSatisfied(item)
}

func (p or[T]) String() string {
	return Describe(p.first) + " or " + Describe(p.second)
}

// not is the negation returned by Not.
type not[T any] struct {
	inner Predicate[T]
}

// Not returns the negation of p.
func Not[T any](p Predicate[T]) Predicate[T] {
	mustNotBeNil("Not", p)
	return not[T]{inner: p}
}

func (p not[T]) IsSatisfied(item T) bool {
	return !p.inner.IsSatisfied(item)
}

func (p not[T]) String() string {
	return "not " + Describe(p.inner)
}

// all is the n-ary conjunction returned by All.
type all[T any] struct {
	preds []Predicate[T]
}

// All returns the conjunction of ps, evaluated left to right and stopping at
// the first unsatisfied predicate. All() is satisfied by every item.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	mustNotBeNil("All", ps...)
	return all[T]{preds: append([]Predicate[T](nil), ps...)}
}

func (p all[T]) IsSatisfied(item T) bool {
	for _, q := range p.preds {
		if !q.IsSatisfied(item) {
			return false
		}
	}
	return true
}

func (p all[T]) String() string {
	if len(p.preds) == 0 {
		return "anything"
	}
	return join(p.preds, " and ")
}

// anyOf is the n-ary disjunction returned by Any.
type anyOf[T any] struct {
	preds []Predicate[T]
}

// Any returns the disjunction of ps, evaluated left to right and stopping at
// the first satisfied predicate. Any() is satisfied by no item.
func Any[T any](ps ...Predicate[T]) Predicate[T] {
	mustNotBeNil("Any", ps...)
	return anyOf[T]{preds: append([]Predicate[T](nil), ps...)}
}

func (p anyOf[T]) IsSatisfied(item T) bool {
	for _, q := range p.preds {
		if q.IsSatisfied(item) {
			return true
		}
	}
	return false
}

func (p anyOf[T]) String() string {
	if len(p.preds) == 0 {
		return "nothing"
	}
	return join(p.preds, " or ")
}

func join[T any](ps []Predicate[T], sep string) string {
	parts := make([]string, len(ps))
	for i, q := range ps {
		parts[i] = Describe(q)
	}
	return strings.Join(parts, sep)
}

// mustNotBeNil panics when a combinator is handed a nil predicate.
func mustNotBeNil[T any](combinator string, ps ...Predicate[T]) {
	for i, p := range ps {
		if p == nil {
			panic(fmt.Sprintf("predicate.%s: operand %d is nil", combinator, i))
		}
	}
}
