// Package ops builds the method matcher vocabulary: named leaf matchers over
// method descriptions plus the junction helpers that compose them.
//
// Every factory returns a MethodMatcher, so selections chain fluently:
//
//	ops.NameStartsWith("get").And(ops.IsPublic()).And(ops.TakesArgumentCount(0))
package ops

import (
	"github.com/byteloom/pointcut/pkg/match/matcher"
	"github.com/byteloom/pointcut/pkg/method"
)

// MethodMatcher is a chainable matcher over method descriptions.
type MethodMatcher = matcher.Junction[method.Description]

// j wraps a leaf in its chainable form.
func j(m matcher.Matcher[method.Description]) MethodMatcher {
	return matcher.NewJunction(m)
}

// Any matches every method description.
func Any() MethodMatcher {
	return j(&matcher.AllPass[method.Description]{})
}

// None matches no method description.
func None() MethodMatcher {
	return j(&matcher.AllCut[method.Description]{})
}

// Not matches whatever m does not match.
func Not(m matcher.Matcher[method.Description]) MethodMatcher {
	return j(&matcher.Not[method.Description]{Matcher: matcher.Unwrap(m)})
}

// And matches only the descriptions every operand accepts. Operands are
// evaluated in order and evaluation stops at the first miss.
func And(first, second matcher.Matcher[method.Description], others ...matcher.Matcher[method.Description]) MethodMatcher {
	group := &matcher.And[method.Description]{}
	group.Add(matcher.Unwrap(first))
	group.Add(matcher.Unwrap(second))
	for _, m := range others {
		group.Add(matcher.Unwrap(m))
	}

	return j(group)
}

// Or matches the descriptions any operand accepts. Operands are evaluated in
// order and evaluation stops at the first hit.
func Or(first, second matcher.Matcher[method.Description], others ...matcher.Matcher[method.Description]) MethodMatcher {
	group := &matcher.Or[method.Description]{}
	group.Add(matcher.Unwrap(first))
	group.Add(matcher.Unwrap(second))
	for _, m := range others {
		group.Add(matcher.Unwrap(m))
	}

	return j(group)
}
