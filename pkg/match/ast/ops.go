package ast

// FilterOp is an enum that represents operations that can be performed
// when filtering (equality, inequality, etc.)
type FilterOp string

// If you add a FilterOp, MAKE SURE TO UPDATE ALL FILTER IMPLEMENTATIONS! Go
// does not enforce exhaustive pattern matching on "enum" types.
const (
	// FilterOpEquals is the equality operator
	//
	// "toString" FilterOpEquals "toString" = true
	// "toStrin" FilterOpEquals "toString" = false
	FilterOpEquals FilterOp = "equals"

	// FilterOpNotEquals is the inverse of equals.
	FilterOpNotEquals = "notequals"

	// FilterOpContains is a substring check.
	//
	// "hashCode" FilterOpContains "shCo" = true
	FilterOpContains = "contains"

	// FilterOpNotContains is the inverse of contains.
	FilterOpNotContains = "notcontains"

	// FilterOpContainsPrefix is like FilterOpContains, but checks against the start of a string.
	//
	// "getValue" ContainsPrefix "get" = true
	FilterOpContainsPrefix = "containsprefix"

	// FilterOpNotContainsPrefix is the inverse of FilterOpContainsPrefix
	FilterOpNotContainsPrefix = "notcontainsprefix"

	// FilterOpContainsSuffix is like FilterOpContains, but checks against the end of a string.
	//
	// "getValue" ContainsSuffix "Value" = true
	FilterOpContainsSuffix = "containssuffix"

	// FilterOpNotContainsSuffix is the inverse of FilterOpContainsSuffix
	FilterOpNotContainsSuffix = "notcontainssuffix"

	// FilterOpMatches anchors a regular expression against the whole string.
	//
	// "getValue" Matches "get[A-Z].*" = true
	// "getValue" Matches "get" = false
	FilterOpMatches = "matches"

	// FilterOpNotMatches is the inverse of FilterOpMatches
	FilterOpNotMatches = "notmatches"

	// FilterOpSequence compares an ordered value list against a sequence field.
	// The whole list is one operand; order and length both count.
	FilterOpSequence = "sequence"

	// FilterOpFlag tests a boolean trait named by a flag field.
	FilterOpFlag = "flag"

	// FilterOpVoid is base-depth operator that is used for an empty filter
	FilterOpVoid = "void"

	// FilterOpContradiction is a base-depth operator that filters all data.
	FilterOpContradiction = "contradiction"

	// FilterOpAnd is an operator that succeeds if all parameters succeed.
	FilterOpAnd = "and"

	// FilterOpOr is an operator that succeeds if any parameter succeeds
	FilterOpOr = "or"

	// FilterOpNot is an operator that contains a single operand
	FilterOpNot = "not"
)

// VoidOp is base-depth operator that is used for an empty filter
type VoidOp struct{}

// Op returns the FilterOp enumeration value for the operator.
func (_ *VoidOp) Op() FilterOp {
	return FilterOpVoid
}

// ContradictionOp is a base-depth operator that filters all data.
type ContradictionOp struct{}

// Op returns the FilterOp enumeration value for the operator.
func (_ *ContradictionOp) Op() FilterOp {
	return FilterOpContradiction
}

// AndOp is a filter operation that contains a flat list of nodes which should all resolve
// to true in order for the result to be true.
type AndOp struct {
	Operands []FilterNode
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *AndOp) Op() FilterOp {
	return FilterOpAnd
}

// Add appends a filter node to the flat list of operands within the AND operator
func (ao *AndOp) Add(node FilterNode) {
	ao.Operands = append(ao.Operands, node)
}

// OrOp is a filter operation that contains a flat list of nodes which at least one node
// should resolve to true in order for the result to be true.
type OrOp struct {
	Operands []FilterNode
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *OrOp) Op() FilterOp {
	return FilterOpOr
}

// Add appends a filter node to the flat list of operands within the OR operator
func (oo *OrOp) Add(node FilterNode) {
	oo.Operands = append(oo.Operands, node)
}

// NotOp is a filter operation that logically inverts result of the child operand.
type NotOp struct {
	Operand FilterNode
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *NotOp) Op() FilterOp {
	return FilterOpNot
}

// Add sets the not operand to the parameter
func (no *NotOp) Add(node FilterNode) {
	no.Operand = node
}

// EqualOp is a filter operation that compares a resolvable field (Left) to a
// string value (Right)
type EqualOp struct {
	// Left contains a resolvable Field (property of an input type) which can be
	// used to compare against the Right value.
	Left *Field

	// Right contains the value which we wish to compare the resolved field to.
	Right string
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *EqualOp) Op() FilterOp {
	return FilterOpEquals
}

// ContainsOp is a filter operation that checks to see if a resolvable field (Left) contains a
// string value (Right)
type ContainsOp struct {
	// Left contains a resolvable Field (property of an input type) which can be
	// used to query against using the Right value.
	Left *Field

	// Right contains the value which we use to search the resolved Left field with.
	Right string
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *ContainsOp) Op() FilterOp {
	return FilterOpContains
}

// ContainsPrefixOp is a filter operation that checks to see if a resolvable field (Left) starts with a
// string value (Right)
type ContainsPrefixOp struct {
	// Left contains a resolvable Field (property of an input type) which can be
	// used to query against using the Right value.
	Left *Field

	// Right contains the value which we use to search the resolved Left field with.
	Right string
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *ContainsPrefixOp) Op() FilterOp {
	return FilterOpContainsPrefix
}

// ContainsSuffixOp is a filter operation that checks to see if a resolvable field (Left) ends with a
// string value (Right)
type ContainsSuffixOp struct {
	// Left contains a resolvable Field (property of an input type) which can be
	// used to query against using the Right value.
	Left *Field

	// Right contains the value which we use to search the resolved Left field with.
	Right string
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *ContainsSuffixOp) Op() FilterOp {
	return FilterOpContainsSuffix
}

// MatchesOp is a filter operation that anchors a regular expression (Right) against the
// whole of a resolvable field (Left).
type MatchesOp struct {
	// Left contains a resolvable Field (property of an input type) which can be
	// used to query against using the Right value.
	Left *Field

	// Right contains the regular expression the resolved Left field must match in full.
	Right string
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *MatchesOp) Op() FilterOp {
	return FilterOpMatches
}

// SequenceOp is a filter operation that compares an ordered value list (Values) against a
// sequence field (Left). Unlike the value lists of the other comparisons, which the parser
// folds into OR or AND groups, the list here is a single operand whose order and length
// both count.
type SequenceOp struct {
	// Left contains a resolvable sequence Field (property of an input type) which can be
	// compared against the Values list.
	Left *Field

	// Values contains the ordered values the resolved field must equal element for element.
	Values []string
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *SequenceOp) Op() FilterOp {
	return FilterOpSequence
}

// FlagOp is a filter operation that tests the boolean trait named by a flag field. It has
// no value operand.
type FlagOp struct {
	// Field names the boolean trait under test.
	Field *Field
}

// Op returns the FilterOp enumeration value for the operator.
func (_ *FlagOp) Op() FilterOp {
	return FilterOpFlag
}
