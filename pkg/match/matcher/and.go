package matcher

import (
	"fmt"
)

// And is a set of matchers that should be evaluated as a logical
// AND.
type And[T any] struct {
	Matchers []Matcher[T]
}

func (a *And[T]) Add(m Matcher[T]) {
	a.Matchers = append(a.Matchers, m)
}

func (a *And[T]) String() string {
	s := "(and"
	for _, m := range a.Matchers {
		s += fmt.Sprintf(" %s", m)
	}

	s += ")"
	return s
}

// Matches is the canonical in-Go function for determining if T
// matches AND match rules. Operands are evaluated in order and
// evaluation stops at the first miss. An empty AND matches everything.
func (a *And[T]) Matches(that T) bool {
	for _, m := range a.Matchers {
		if !m.Matches(that) {
			return false
		}
	}

	return true
}
