package matcher

// AllCut is a matcher that matches nothing. Leaf factories hand one back
// in place of a matcher whose inputs were unusable, such as a name pattern
// that failed to compile.
type AllCut[T any] struct{}

// String returns the string representation of the matcher instance
func (ac *AllCut[T]) String() string { return "(AllCut)" }

// Matches is the canonical in-Go function for determining if T
// matches a specific implementation's rules.
func (ac *AllCut[T]) Matches(T) bool { return false }
