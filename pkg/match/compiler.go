package match

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/byteloom/pointcut/pkg/match/ast"
	"github.com/byteloom/pointcut/pkg/match/matcher"
	"github.com/byteloom/pointcut/pkg/match/ops"
	"github.com/byteloom/pointcut/pkg/match/transform"
	"github.com/byteloom/pointcut/pkg/method"
)

// TypeResolver resolves a type name appearing in a selector into the
// caller's metadata graph. The second return is false when the name is
// unknown.
type TypeResolver func(name string) (method.Type, bool)

// ResolverFor builds a TypeResolver over a fixed set of types, keyed by
// binary name.
func ResolverFor(types ...method.Type) TypeResolver {
	byName := make(map[string]method.Type, len(types))
	for _, t := range types {
		byName[t.Name()] = t
	}

	return func(name string) (method.Type, bool) {
		t, ok := byName[name]
		return t, ok
	}
}

// NewMethodMatchCompiler creates a new instance of a
// matcher.MatchCompiler[method.Description] which can be used to compile
// Filter ASTs into matcher.Matcher[method.Description] implementations.
//
// The resolver supplies the types named by declaredin and throws
// comparisons, which probe the type graph and therefore cannot run on a
// bare name. If the resolver is nil, the compiler will fail to compile
// selectors using those fields. Comparisons that only consider type
// identity (returns, args) fall back to the name itself when the resolver
// does not know it.
//
// Additional compiler passes run after the built-in pass that normalizes
// slash-separated internal names ("java/lang/String") to binary names.
func NewMethodMatchCompiler(resolver TypeResolver, passes ...transform.CompilerPass) *matcher.MatchCompiler[method.Description] {
	all := []transform.CompilerPass{
		transform.BinaryNamePass(
			string(FieldReturns),
			string(FieldPackage),
			string(FieldDeclaredIn),
			string(FieldThrows),
			string(FieldArgs),
		),
	}
	all = append(all, passes...)

	return matcher.NewMatchCompiler(methodLeafFactory(resolver), all...)
}

// methodLeafFactory lowers comparison nodes into method matchers from the
// ops package.
func methodLeafFactory(resolver TypeResolver) matcher.LeafFactory[method.Description] {
	return func(node ast.FilterNode) (matcher.Matcher[method.Description], error) {
		m, err := methodLeaf(resolver, node)
		if err != nil {
			return nil, err
		}

		return matcher.Unwrap[method.Description](m), nil
	}
}

func methodLeaf(resolver TypeResolver, node ast.FilterNode) (ops.MethodMatcher, error) {
	switch concrete := node.(type) {
	case *ast.EqualOp:
		return equalLeaf(resolver, concrete.Left, concrete.Right)

	case *ast.ContainsOp:
		return nameLeaf(concrete.Left, ast.FilterOpContains, concrete.Right)

	case *ast.ContainsPrefixOp:
		return nameLeaf(concrete.Left, ast.FilterOpContainsPrefix, concrete.Right)

	case *ast.ContainsSuffixOp:
		return nameLeaf(concrete.Left, ast.FilterOpContainsSuffix, concrete.Right)

	case *ast.MatchesOp:
		return regexLeaf(concrete.Left, concrete.Right)

	case *ast.SequenceOp:
		return sequenceLeaf(resolver, concrete)

	case *ast.FlagOp:
		return flagLeaf(concrete.Field)

	default:
		return ops.MethodMatcher{}, fmt.Errorf("unhandled node type: %s", node.Op())
	}
}

// equalLeaf lowers ':' comparisons, the only op every field supports.
func equalLeaf(resolver TypeResolver, field *ast.Field, value string) (ops.MethodMatcher, error) {
	switch MethodField(field.Name) {
	case FieldName:
		return ops.Named(value), nil

	case FieldIName:
		return ops.NamedIgnoreCase(value), nil

	case FieldReturns:
		return ops.Returns(resolveName(resolver, value)), nil

	case FieldPackage:
		return ops.IsDefinedInPackage(value), nil

	case FieldDeclaredIn:
		t, err := resolveGraph(resolver, value)
		if err != nil {
			return ops.MethodMatcher{}, err
		}

		return ops.DeclaredIn(t), nil

	case FieldThrows:
		t, err := resolveGraph(resolver, value)
		if err != nil {
			return ops.MethodMatcher{}, err
		}

		return ops.CanThrow(t), nil

	case FieldArgCount:
		count, err := strconv.Atoi(value)
		if err != nil {
			return ops.MethodMatcher{}, fmt.Errorf("argcount value %q is not a number", value)
		}
		if count < 0 {
			return ops.MethodMatcher{}, fmt.Errorf("argcount value %q is negative", value)
		}

		return ops.TakesArgumentCount(count), nil

	default:
		return ops.MethodMatcher{}, fmt.Errorf("unknown field: %s", field.Name)
	}
}

// nameLeaf lowers the substring ops, which only the name fields support.
func nameLeaf(field *ast.Field, op ast.FilterOp, value string) (ops.MethodMatcher, error) {
	switch MethodField(field.Name) {
	case FieldName:
		switch op {
		case ast.FilterOpContains:
			return ops.NameContains(value), nil
		case ast.FilterOpContainsPrefix:
			return ops.NameStartsWith(value), nil
		case ast.FilterOpContainsSuffix:
			return ops.NameEndsWith(value), nil
		}

	case FieldIName:
		switch op {
		case ast.FilterOpContains:
			return ops.NameContainsIgnoreCase(value), nil
		case ast.FilterOpContainsPrefix:
			return ops.NameStartsWithIgnoreCase(value), nil
		case ast.FilterOpContainsSuffix:
			return ops.NameEndsWithIgnoreCase(value), nil
		}
	}

	return ops.MethodMatcher{}, fmt.Errorf("field %q does not support '%s' comparisons", field.Name, op)
}

// regexLeaf lowers '=~:' comparisons. Only the case-sensitive name field
// takes a pattern; unlike ops.NameMatches, which logs and yields a matcher
// that matches nothing, an unparseable pattern is a compile error here.
func regexLeaf(field *ast.Field, value string) (ops.MethodMatcher, error) {
	if MethodField(field.Name) != FieldName {
		return ops.MethodMatcher{}, fmt.Errorf("field %q does not support '%s' comparisons", field.Name, ast.FilterOpMatches)
	}

	if _, err := regexp.Compile(value); err != nil {
		return ops.MethodMatcher{}, fmt.Errorf("invalid name pattern %q: %w", value, err)
	}

	return ops.NameMatches(value), nil
}

// sequenceLeaf lowers ordered value lists into a full signature comparison.
func sequenceLeaf(resolver TypeResolver, node *ast.SequenceOp) (ops.MethodMatcher, error) {
	if MethodField(node.Left.Name) != FieldArgs {
		return ops.MethodMatcher{}, fmt.Errorf("unknown ordered field: %s", node.Left.Name)
	}

	types := make([]method.Type, 0, len(node.Values))
	for _, v := range node.Values {
		types = append(types, resolveName(resolver, v))
	}

	return ops.TakesArguments(types...), nil
}

// flagLeaf lowers flag keywords into their trait matchers.
func flagLeaf(field *ast.Field) (ops.MethodMatcher, error) {
	switch MethodFlag(field.Name) {
	case FlagPublic:
		return ops.IsPublic(), nil
	case FlagPrivate:
		return ops.IsPrivate(), nil
	case FlagProtected:
		return ops.IsProtected(), nil
	case FlagPackagePrivate:
		return ops.IsPackagePrivate(), nil
	case FlagStatic:
		return ops.IsStatic(), nil
	case FlagFinal:
		return ops.IsFinal(), nil
	case FlagSynchronized:
		return ops.IsSynchronized(), nil
	case FlagNative:
		return ops.IsNative(), nil
	case FlagStrict:
		return ops.IsStrict(), nil
	case FlagVarArgs:
		return ops.IsVarArgs(), nil
	case FlagSynthetic:
		return ops.IsSynthetic(), nil
	case FlagBridge:
		return ops.IsBridge(), nil
	case FlagConstructor:
		return ops.IsConstructor(), nil
	case FlagTypeInitializer:
		return ops.IsTypeInitializer(), nil
	case FlagDefaultFinalize:
		return ops.IsDefaultFinalize(), nil
	default:
		return ops.MethodMatcher{}, fmt.Errorf("unknown flag: %s", field.Name)
	}
}

// resolveName returns a type carrying the given name for comparisons that
// only consider type identity. The resolver takes precedence so callers can
// keep one set of canonical type instances.
func resolveName(resolver TypeResolver, name string) method.Type {
	if resolver != nil {
		if t, ok := resolver(name); ok {
			return t
		}
	}

	if name == method.VoidTypeName {
		return method.Void()
	}

	return &method.Class{TypeName: name}
}

// resolveGraph returns the resolved type for comparisons that walk the type
// graph. Assignability and declared member probes cannot run on a bare
// name, so an unresolvable one is a compile error.
func resolveGraph(resolver TypeResolver, name string) (method.Type, error) {
	if resolver != nil {
		if t, ok := resolver(name); ok {
			return t, nil
		}
	}

	return nil, fmt.Errorf("cannot resolve type %q", name)
}
