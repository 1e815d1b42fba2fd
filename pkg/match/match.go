// Package match is the front door of the method selector library. It binds
// the selector language of the ast package to the matcher vocabulary of the
// ops package: selector text parses into a Filter tree, and a compiler
// lowers the tree into a single Matcher over method descriptions.
//
//	m, err := match.Compile(`name<~:"get" + public + argcount:"0"`, resolver)
//	if err != nil { ... }
//	for _, desc := range descriptions {
//		if m.Matches(desc) { ... }
//	}
//
// Callers that build selections in code rather than text can skip this
// package and use the ops factories directly.
package match

import (
	"github.com/byteloom/pointcut/pkg/match/ast"
	"github.com/byteloom/pointcut/pkg/match/matcher"
	"github.com/byteloom/pointcut/pkg/method"
)

// Filter is just the root node of an AST. There are various compiler
// implementations available to create data source specific matching from
// the AST.
type Filter = ast.FilterNode

// Matcher is a compiled selection over method descriptions. Matchers are
// immutable once compiled and safe for concurrent use.
type Matcher = matcher.Matcher[method.Description]

// Compile parses selector text and compiles it into a Matcher in one step.
// An empty selector compiles to a matcher that matches everything.
func Compile(selector string, resolver TypeResolver) (Matcher, error) {
	tree, err := NewMethodFilterParser().Parse(selector)
	if err != nil {
		return nil, err
	}

	return NewMethodMatchCompiler(resolver).Compile(tree)
}
