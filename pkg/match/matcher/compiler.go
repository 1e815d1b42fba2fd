package matcher

import (
	"fmt"

	"github.com/byteloom/pointcut/pkg/match/ast"
	"github.com/byteloom/pointcut/pkg/match/transform"
	"github.com/byteloom/pointcut/pkg/match/util"
)

// LeafFactory builds the Matcher for a single comparison node. The compiler
// handles the group ops itself and hands every remaining node to the
// factory, so factories stay free of tree walking concerns.
type LeafFactory[T any] func(ast.FilterNode) (Matcher[T], error)

// MatchCompiler compiles an `ast.FilterNode` into a Matcher[T] implementation.
type MatchCompiler[T any] struct {
	leaf   LeafFactory[T]
	passes []transform.CompilerPass
}

// NewMatchCompiler creates a new MatchCompiler for T instances provided the
// factory which can lower comparison nodes into T matchers.
func NewMatchCompiler[T any](
	leaf LeafFactory[T],
	passes ...transform.CompilerPass,
) *MatchCompiler[T] {
	return &MatchCompiler[T]{
		leaf:   leaf,
		passes: passes,
	}
}

// Compile accepts an `ast.FilterNode` tree and compiles it into a `Matcher[T]` implementation
// which can be used to match T instances dynamically.
func (mc *MatchCompiler[T]) Compile(filter ast.FilterNode) (Matcher[T], error) {
	// apply compiler passes on parsed ast
	var err error
	filter, err = transform.ApplyAll(filter, mc.passes)
	if err != nil {
		return nil, fmt.Errorf("applying compiler passes: %w", err)
	}

	// if the root node is a void op, return an allpass
	if _, ok := filter.(*ast.VoidOp); ok {
		return &AllPass[T]{}, nil
	}

	var result Matcher[T]
	var firstErr error
	var currentOps *util.Stack[MatcherGroup[T]] = util.NewStack[MatcherGroup[T]]()

	// handleNode is the ast walker func. group ops get pushed onto a stack on
	// the Enter state, and popped on the Exit state. Any ops between Enter and
	// Exit are added to the group. If there are no more groups on the stack after
	// an Exit state, we set the result to the final group.
	handleNode := func(node ast.FilterNode, state ast.TraversalState) {
		if firstErr != nil {
			return
		}

		switch node.(type) {
		case *ast.AndOp:
			if state == ast.TraversalStateEnter {
				currentOps.Push(&And[T]{})
			} else if state == ast.TraversalStateExit {
				if currentOps.Length() > 1 {
					current := currentOps.Pop()
					currentOps.Top().Add(current)
				} else {
					result = currentOps.Pop()
				}
			}
		case *ast.OrOp:
			if state == ast.TraversalStateEnter {
				currentOps.Push(&Or[T]{})
			} else if state == ast.TraversalStateExit {
				if currentOps.Length() > 1 {
					current := currentOps.Pop()
					currentOps.Top().Add(current)
				} else {
					result = currentOps.Pop()
				}
			}
		case *ast.NotOp:
			if state == ast.TraversalStateEnter {
				currentOps.Push(&Not[T]{})
			} else if state == ast.TraversalStateExit {
				if currentOps.Length() > 1 {
					current := currentOps.Pop()
					currentOps.Top().Add(current)
				} else {
					result = currentOps.Pop()
				}
			}
		case *ast.VoidOp:
			// contributes nothing inside a group
		case *ast.ContradictionOp:
			if currentOps.Length() == 0 {
				result = &AllCut[T]{}
			} else {
				currentOps.Top().Add(&AllCut[T]{})
			}
		default:
			m, err := mc.leaf(node)
			if err != nil {
				firstErr = err
				return
			}

			if currentOps.Length() == 0 {
				result = m
			} else {
				currentOps.Top().Add(m)
			}
		}
	}

	ast.PreOrderTraversal(filter, handleNode)
	if firstErr != nil {
		return nil, firstErr
	}
	if result == nil {
		return &AllPass[T]{}, nil
	}

	return result, nil
}
