package matcher

import (
	"fmt"
)

// Or is a set of matchers that should be evaluated as a logical
// OR.
type Or[T any] struct {
	Matchers []Matcher[T]
}

func (o *Or[T]) Add(m Matcher[T]) {
	o.Matchers = append(o.Matchers, m)
}

func (o *Or[T]) String() string {
	s := "(or"
	for _, m := range o.Matchers {
		s += fmt.Sprintf(" %s", m)
	}

	s += ")"
	return s
}

// Matches is the canonical in-Go function for determining if T
// matches OR match rules. Operands are evaluated in order and
// evaluation stops at the first hit. An empty OR matches nothing.
func (o *Or[T]) Matches(that T) bool {
	for _, m := range o.Matchers {
		if m.Matches(that) {
			return true
		}
	}

	return false
}
