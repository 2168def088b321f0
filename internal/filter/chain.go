package filter

import (
	"strings"

	"github.com/papapumpkin/prism/internal/predicate"
)

// Result contains the outcome of running a Chain against one item.
type Result struct {
	Passed bool          // true if all checks passed
	Checks []CheckResult // evaluated checks, in order
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Name   string
	Passed bool
}

// FirstFailure returns the first failing check, or nil if all passed.
func (r *Result) FirstFailure() *CheckResult {
	for i := range r.Checks {
		if !r.Checks[i].Passed {
			return &r.Checks[i]
		}
	}
	return nil
}

// Check is a single named predicate in a Chain.
type Check[T any] struct {
	Name      string
	Predicate predicate.Predicate[T]
}

// NewCheck names p by its description.
func NewCheck[T any](p predicate.Predicate[T]) Check[T] {
	return Check[T]{Name: predicate.Describe(p), Predicate: p}
}

// Chain is a conjunction of named checks that records which check rejected
// an item. A Chain is itself a predicate.
type Chain[T any] struct {
	Checks []Check[T]
}

// Run evaluates each check in sequence, stopping on the first failure. An
// empty chain passes every item.
func (c *Chain[T]) Run(item T) *Result {
	result := &Result{Passed: true, Checks: make([]CheckResult, 0, len(c.Checks))}

	for _, check := range c.Checks {
		passed := check.Predicate.IsSatisfied(item)
		result.Checks = append(result.Checks, CheckResult{Name: check.Name, Passed: passed})
		if !passed {
			result.Passed = false
			return result
		}
	}

	return result
}

// IsSatisfied implements predicate.Predicate.
func (c *Chain[T]) IsSatisfied(item T) bool {
	return c.Run(item).Passed
}

// String joins the check names with "and".
func (c *Chain[T]) String() string {
	if len(c.Checks) == 0 {
		return "anything"
	}
	names := make([]string, len(c.Checks))
	for i, check := range c.Checks {
		names[i] = check.Name
	}
	return strings.Join(names, " and ")
}
