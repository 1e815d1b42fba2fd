package match

import "github.com/byteloom/pointcut/pkg/match/ast"

// NewMethodFilterParser creates a new `ast.FilterParser` implementation
// which recognizes the method selector fields and flag keywords.
func NewMethodFilterParser() ast.FilterParser {
	return ast.NewFilterParser(methodFilterFields)
}
