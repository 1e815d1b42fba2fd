// Package util contains small generic containers shared by the ast walker
// and the matcher compiler.
package util

// Stack is a basic LIFO stack backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack creates a new Stack[T]
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes the top item of the stack and returns it. Popping an empty
// stack returns the zero value.
func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		return defaultFor[T]()
	}

	value := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return value
}

// Top returns the item on the top of the stack without removing it.
func (s *Stack[T]) Top() T {
	if len(s.items) == 0 {
		return defaultFor[T]()
	}

	return s.items[len(s.items)-1]
}

// Length returns the total number of elements on the stack.
func (s *Stack[T]) Length() int {
	return len(s.items)
}

func defaultFor[T any]() T {
	var t T
	return t
}
