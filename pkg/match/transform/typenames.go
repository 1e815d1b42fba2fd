package transform

import (
	"strings"

	"github.com/byteloom/pointcut/pkg/match/ast"
)

// BinaryNamePass returns a pass which rewrites type names written in the JVM
// internal form ("java/lang/Object") to their dotted binary form in the
// values of the named fields. Values of every other field pass through
// untouched, so method names containing no '/' never change.
func BinaryNamePass(fields ...string) CompilerPass {
	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		names[f] = true
	}

	return &binaryNamePass{fields: names}
}

type binaryNamePass struct {
	fields map[string]bool
}

// Exec executes the pass on the provided AST. This method may either return
// a new AST or modify and return the AST parameter. The parameter into this
// method may be changed directly.
func (bnp *binaryNamePass) Exec(filter ast.FilterNode) (ast.FilterNode, error) {
	ast.PreOrderTraversal(filter, func(fn ast.FilterNode, ts ast.TraversalState) {
		switch n := fn.(type) {
		case *ast.EqualOp:
			if bnp.applies(n.Left) {
				n.Right = binaryName(n.Right)
			}
		case *ast.SequenceOp:
			if bnp.applies(n.Left) {
				for i, v := range n.Values {
					n.Values[i] = binaryName(v)
				}
			}
		}
	})
	return filter, nil
}

func (bnp *binaryNamePass) applies(f *ast.Field) bool {
	return f != nil && bnp.fields[f.Name]
}

// replaces the internal form separator with the binary form separator
func binaryName(s string) string {
	return strings.ReplaceAll(s, "/", ".")
}
