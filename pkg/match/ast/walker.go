package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/byteloom/pointcut/pkg/match/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// used to apply a title to pipeline
var titleCaser cases.Caser = cases.Title(language.Und, cases.NoLower)
var lowerCaser cases.Caser = cases.Lower(language.Und)

// TraversalState represents the state of the current leaf node in a traversal
// of the filter tree. Any grouping ops will include an Enter on their first
// occurence, and an Exit when leaving the op state.
type TraversalState int

const (
	// TraversalStateNone is used whenever a binary op leaf node is traversed.
	TraversalStateNone TraversalState = iota

	// TraversalStateEnter is used when a group op leaf node is traversed (and, or, not)
	TraversalStateEnter

	// TraversalStateExit is used when a group op leaf node is popped (and, or, not).
	TraversalStateExit
)

// TransformLeaves produces a new tree, leaving non-leaf nodes (e.g. And, Or)
// intact and replacing leaf nodes (e.g. Equals, Contains) with the result of
// calling leafTransformer(node).
func TransformLeaves(node FilterNode, transformer func(FilterNode) FilterNode) FilterNode {
	if node == nil {
		return nil
	}

	// For group ops, we need to execute the callback with an Enter,
	// recursively call traverse, then execute the callback with an Exit.
	switch n := node.(type) {
	case *NotOp:
		return &NotOp{
			Operand: TransformLeaves(n.Operand, transformer),
		}
	case *AndOp:
		var newOperands []FilterNode
		for _, o := range n.Operands {
			newOperands = append(newOperands, TransformLeaves(o, transformer))
		}
		return &AndOp{
			Operands: newOperands,
		}
	case *OrOp:
		var newOperands []FilterNode
		for _, o := range n.Operands {
			newOperands = append(newOperands, TransformLeaves(o, transformer))
		}
		return &OrOp{
			Operands: newOperands,
		}

	// Remaining nodes are assumed to be leaves
	default:
		return transformer(node)
	}
}

// PreOrderTraversal accepts a root `FilterNode` and calls the f callback on
// each leaf node it traverses. When entering "group" leaf nodes (leaf nodes
// which contain other leaf nodes), a TraversalStateEnter/Exit will be included
// to denote each depth. In short, the callback will be executed twice for each
// "group" op, once before entering, and once before exiting.
func PreOrderTraversal(node FilterNode, f func(FilterNode, TraversalState)) {
	if node == nil {
		return
	}

	// For group ops, we need to execute the callback with an Enter,
	// recursively call traverse, then execute the callback with an Exit.
	switch n := node.(type) {
	case *NotOp:
		f(node, TraversalStateEnter)
		PreOrderTraversal(n.Operand, f)
		f(node, TraversalStateExit)

	case *AndOp:
		f(node, TraversalStateEnter)
		for _, o := range n.Operands {
			PreOrderTraversal(o, f)
		}
		f(node, TraversalStateExit)

	case *OrOp:
		f(node, TraversalStateEnter)
		for _, o := range n.Operands {
			PreOrderTraversal(o, f)
		}
		f(node, TraversalStateExit)

	// Otherwise, we just linearly traverse
	default:
		f(node, TraversalStateNone)
	}

}

// ToPreOrderString runs a PreOrderTraversal and generates an indented tree structure string
// format for the provided tree root.
func ToPreOrderString(node FilterNode) string {
	var sb strings.Builder
	indent := 0

	printNode := func(n FilterNode, action TraversalState) {
		if action == TraversalStateEnter {
			sb.WriteString(OpStringFor(n, action, indent))
			indent++
		} else if action == TraversalStateExit {
			indent--
			sb.WriteString(OpStringFor(n, action, indent))
		} else {
			sb.WriteString(OpStringFor(n, action, indent))
		}
	}

	PreOrderTraversal(node, printNode)

	return sb.String()
}

// ToPreOrderShortString runs a PreOrderTraversal and generates a condensed tree structure string
// format for the provided tree root.
func ToPreOrderShortString(node FilterNode) string {
	var sb strings.Builder

	printNode := func(n FilterNode, action TraversalState) {
		sb.WriteString(ShortOpStringFor(n, action))
	}

	PreOrderTraversal(node, printNode)

	return sb.String()
}

// OpStringFor returns a string for the provided leaf node, traversal state, and current
// depth.
func OpStringFor(node FilterNode, traversalState TraversalState, depth int) string {
	prefix := indent(depth)

	if traversalState == TraversalStateExit {
		return prefix + "}\n"
	}

	if traversalState == TraversalStateEnter {
		return prefix + titleCaser.String(string(node.Op())) + " {\n"
	}

	open := prefix + titleCaser.String(string(node.Op())) + " { "

	switch n := node.(type) {
	case *VoidOp:
		open += ")"
	case *EqualOp:
		open += fmt.Sprintf("Left: %s, Right: %s }\n", n.Left.String(), n.Right)
	case *ContainsOp:
		open += fmt.Sprintf("Left: %s, Right: %s }\n", n.Left.String(), n.Right)
	case *ContainsPrefixOp:
		open += fmt.Sprintf("Left: %s, Right: %s }\n", n.Left.String(), n.Right)
	case *ContainsSuffixOp:
		open += fmt.Sprintf("Left: %s, Right: %s }\n", n.Left.String(), n.Right)
	case *MatchesOp:
		open += fmt.Sprintf("Left: %s, Right: %s }\n", n.Left.String(), n.Right)
	case *SequenceOp:
		open += fmt.Sprintf("Left: %s, Values: %s }\n", n.Left.String(), strings.Join(n.Values, ","))
	case *FlagOp:
		open += fmt.Sprintf("Field: %s }\n", n.Field.String())
	default:
		open += "}\n"
	}

	return open
}

// ShortOpStringFor returns a condensed string for the provided leaf node and traversal
// state.
func ShortOpStringFor(node FilterNode, traversalState TraversalState) string {
	if traversalState == TraversalStateExit {
		return ")"
	}

	open := lowerCaser.String(string(node.Op())) + "("

	if traversalState == TraversalStateEnter {
		return open
	}

	switch n := node.(type) {
	case *VoidOp:
		open += ")"
	case *EqualOp:
		open += fmt.Sprintf("%s,%s)", condenseField(n.Left), n.Right)
	case *ContainsOp:
		open += fmt.Sprintf("%s,%s)", condenseField(n.Left), n.Right)
	case *ContainsPrefixOp:
		open += fmt.Sprintf("%s,%s)", condenseField(n.Left), n.Right)
	case *ContainsSuffixOp:
		open += fmt.Sprintf("%s,%s)", condenseField(n.Left), n.Right)
	case *MatchesOp:
		open += fmt.Sprintf("%s,%s)", condenseField(n.Left), n.Right)
	case *SequenceOp:
		open += fmt.Sprintf("%s,%s)", condenseField(n.Left), strings.Join(n.Values, ","))
	case *FlagOp:
		open += condenseField(n.Field) + ")"
	default:
		open += ")"
	}

	return open
}

// condenses a field name
func condenseField(field *Field) string {
	return condense(field.Name)
}

func condense(s string) string {
	lc := lowerCaser.String(s)
	if len(lc) > 2 {
		return lc[:2]
	}
	return lc
}

// Clone deep copies and returns the AST parameter.
func Clone(filter FilterNode) FilterNode {
	var result FilterNode = &VoidOp{}
	var currentOps *util.Stack[FilterGroup] = util.NewStack[FilterGroup]()

	PreOrderTraversal(filter, func(fn FilterNode, state TraversalState) {
		if fn == nil {
			return
		}
		switch n := fn.(type) {
		case *AndOp:
			if state == TraversalStateEnter {
				currentOps.Push(&AndOp{})
			} else if state == TraversalStateExit {
				if currentOps.Length() > 1 {
					current := currentOps.Pop()
					currentOps.Top().Add(current)
				} else {
					result = currentOps.Pop()
				}
			}
		case *OrOp:
			if state == TraversalStateEnter {
				currentOps.Push(&OrOp{})
			} else if state == TraversalStateExit {
				if currentOps.Length() > 1 {
					current := currentOps.Pop()
					currentOps.Top().Add(current)
				} else {
					result = currentOps.Pop()
				}
			}
		case *NotOp:
			if state == TraversalStateEnter {
				currentOps.Push(&NotOp{})
			} else if state == TraversalStateExit {
				if currentOps.Length() > 1 {
					current := currentOps.Pop()
					currentOps.Top().Add(current)
				} else {
					result = currentOps.Pop()
				}
			}
		case *ContradictionOp:
			addCloned(currentOps, &result, &ContradictionOp{})
		case *EqualOp:
			addCloned(currentOps, &result, &EqualOp{
				Left:  cloneField(n.Left),
				Right: n.Right,
			})
		case *ContainsOp:
			addCloned(currentOps, &result, &ContainsOp{
				Left:  cloneField(n.Left),
				Right: n.Right,
			})
		case *ContainsPrefixOp:
			addCloned(currentOps, &result, &ContainsPrefixOp{
				Left:  cloneField(n.Left),
				Right: n.Right,
			})
		case *ContainsSuffixOp:
			addCloned(currentOps, &result, &ContainsSuffixOp{
				Left:  cloneField(n.Left),
				Right: n.Right,
			})
		case *MatchesOp:
			addCloned(currentOps, &result, &MatchesOp{
				Left:  cloneField(n.Left),
				Right: n.Right,
			})
		case *SequenceOp:
			values := make([]string, len(n.Values))
			copy(values, n.Values)
			addCloned(currentOps, &result, &SequenceOp{
				Left:   cloneField(n.Left),
				Values: values,
			})
		case *FlagOp:
			addCloned(currentOps, &result, &FlagOp{
				Field: cloneField(n.Field),
			})
		}
	})

	return result
}

// addCloned attaches a cloned leaf to the open group, or promotes it to the
// result when the leaf is the whole tree.
func addCloned(currentOps *util.Stack[FilterGroup], result *FilterNode, node FilterNode) {
	if currentOps.Length() == 0 {
		*result = node
	} else {
		currentOps.Top().Add(node)
	}
}

func cloneField(f *Field) *Field {
	var field Field
	if f != nil {
		field = *f
	}
	return &field
}

// returns an 2-space indention for each depth
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}

// Fields returns the distinct fields referenced anywhere in the tree, sorted
// by name.
func Fields(filter FilterNode) []Field {
	fields := map[Field]bool{}

	record := func(f *Field) {
		if f != nil {
			fields[*f] = true
		}
	}

	PreOrderTraversal(filter, func(fn FilterNode, state TraversalState) {
		if fn == nil {
			return
		}
		switch n := fn.(type) {
		case *EqualOp:
			record(n.Left)
		case *ContainsOp:
			record(n.Left)
		case *ContainsPrefixOp:
			record(n.Left)
		case *ContainsSuffixOp:
			record(n.Left)
		case *MatchesOp:
			record(n.Left)
		case *SequenceOp:
			record(n.Left)
		case *FlagOp:
			record(n.Field)
		}
	})

	response := make([]Field, 0, len(fields))
	for field := range fields {
		response = append(response, field)
	}

	sort.Slice(response, func(i, j int) bool {
		return response[i].Name < response[j].Name
	})

	return response
}
