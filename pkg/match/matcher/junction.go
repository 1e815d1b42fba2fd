package matcher

// Junction wraps a Matcher with a fluent conjunction surface, so matchers
// chain left to right: a.And(b).Or(c). A Junction is itself a Matcher and
// delegates String and Matches to the wrapped matcher unchanged.
type Junction[T any] struct {
	Matcher[T]
}

// NewJunction wraps m so it can be chained. A matcher that already is a
// Junction is returned as is rather than wrapped twice.
func NewJunction[T any](m Matcher[T]) Junction[T] {
	if j, ok := m.(Junction[T]); ok {
		return j
	}
	return Junction[T]{Matcher: m}
}

// And yields a junction matching only when both the receiver and other
// match. Operands evaluate left to right and evaluation stops at the first
// miss.
func (j Junction[T]) And(other Matcher[T]) Junction[T] {
	return Junction[T]{Matcher: &And[T]{
		Matchers: []Matcher[T]{j.Matcher, Unwrap(other)},
	}}
}

// Or yields a junction matching when either the receiver or other matches.
// Operands evaluate left to right and evaluation stops at the first hit.
func (j Junction[T]) Or(other Matcher[T]) Junction[T] {
	return Junction[T]{Matcher: &Or[T]{
		Matchers: []Matcher[T]{j.Matcher, Unwrap(other)},
	}}
}

// Unwrap peels a junction wrapper off a matcher, so composed trees hold the
// bare operands rather than their chaining shims.
func Unwrap[T any](m Matcher[T]) Matcher[T] {
	if j, ok := m.(Junction[T]); ok {
		return j.Matcher
	}
	return m
}
