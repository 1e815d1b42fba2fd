package ast

// FilterNode is the the base instance of a tree leaf node, which is a conditional operator
// which contains operands that may also be leaf nodes. A go type-switch should be used to
// reduce the FilterNode to a concrete type to operate on. If only the type of operator is
// required, the `Op()` field can be used.
type FilterNode interface {
	Op() FilterOp
}

// FilterGroup is a specialized interface for ops which can collect N operands.
type FilterGroup interface {
	FilterNode

	// Adds a new leaf node to the FilterGroup
	Add(FilterNode)
}
