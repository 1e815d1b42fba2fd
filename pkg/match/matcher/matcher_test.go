package matcher_test

import (
	"fmt"
	"testing"

	"github.com/byteloom/pointcut/pkg/match/ast"
	"github.com/byteloom/pointcut/pkg/match/matcher"
	"golang.org/x/sync/errgroup"
)

// recording is a matcher fixture that counts its evaluations, so tests can
// observe short circuiting.
type recording struct {
	name   string
	result bool
	calls  int
}

func (r *recording) String() string { return fmt.Sprintf("(%s)", r.name) }

func (r *recording) Matches(string) bool {
	r.calls++
	return r.result
}

func TestAnd(t *testing.T) {
	hit := &recording{name: "hit", result: true}
	miss := &recording{name: "miss", result: false}
	unreached := &recording{name: "unreached", result: true}

	and := &matcher.And[string]{}
	and.Add(hit)
	and.Add(miss)
	and.Add(unreached)

	if and.Matches("x") {
		t.Errorf("expected AND with a failing operand not to match")
	}
	if hit.calls != 1 || miss.calls != 1 {
		t.Errorf("expected operands before the miss to be evaluated once")
	}
	if unreached.calls != 0 {
		t.Errorf("expected evaluation to stop at the first miss, got %d calls", unreached.calls)
	}

	if got := and.String(); got != "(and (hit) (miss) (unreached))" {
		t.Errorf("unexpected string form: %s", got)
	}
}

func TestAndEmpty(t *testing.T) {
	and := &matcher.And[string]{}
	if !and.Matches("anything") {
		t.Errorf("expected the empty AND to match everything")
	}
}

func TestOr(t *testing.T) {
	missA := &recording{name: "a", result: false}
	hit := &recording{name: "b", result: true}
	unreached := &recording{name: "c", result: true}

	or := &matcher.Or[string]{}
	or.Add(missA)
	or.Add(hit)
	or.Add(unreached)

	if !or.Matches("x") {
		t.Errorf("expected OR with a passing operand to match")
	}
	if missA.calls != 1 || hit.calls != 1 {
		t.Errorf("expected operands before the hit to be evaluated once")
	}
	if unreached.calls != 0 {
		t.Errorf("expected evaluation to stop at the first hit, got %d calls", unreached.calls)
	}

	if got := or.String(); got != "(or (a) (b) (c))" {
		t.Errorf("unexpected string form: %s", got)
	}
}

func TestOrEmpty(t *testing.T) {
	or := &matcher.Or[string]{}
	if or.Matches("anything") {
		t.Errorf("expected the empty OR to match nothing")
	}
}

func TestNot(t *testing.T) {
	not := &matcher.Not[string]{}
	not.Add(&recording{name: "hit", result: true})

	if not.Matches("x") {
		t.Errorf("expected NOT of a match to miss")
	}
	if got := not.String(); got != "(not (hit))" {
		t.Errorf("unexpected string form: %s", got)
	}

	// double negation restores the operand's verdict
	doubled := &matcher.Not[string]{Matcher: not}
	if !doubled.Matches("x") {
		t.Errorf("expected NOT NOT of a match to match")
	}

	// Add replaces the operand rather than accumulating
	not.Add(&recording{name: "miss", result: false})
	if !not.Matches("x") {
		t.Errorf("expected NOT of a miss to match after operand replacement")
	}
}

func TestAllPassAllCut(t *testing.T) {
	pass := &matcher.AllPass[string]{}
	cut := &matcher.AllCut[string]{}

	if !pass.Matches("x") || pass.String() != "(AllPass)" {
		t.Errorf("unexpected AllPass behavior: %t %s", pass.Matches("x"), pass)
	}
	if cut.Matches("x") || cut.String() != "(AllCut)" {
		t.Errorf("unexpected AllCut behavior: %t %s", cut.Matches("x"), cut)
	}
}

func TestJunction(t *testing.T) {
	a := &recording{name: "a", result: true}
	b := &recording{name: "b", result: false}
	c := &recording{name: "c", result: true}

	j := matcher.NewJunction[string](a)

	// wrapping is idempotent and transparent
	if matcher.Unwrap[string](matcher.NewJunction[string](j)) != matcher.Matcher[string](a) {
		t.Errorf("expected junction wrapping to be idempotent")
	}
	if j.String() != "(a)" {
		t.Errorf("expected the junction to delegate String, got %s", j)
	}
	if !j.Matches("x") {
		t.Errorf("expected the junction to delegate Matches")
	}

	and := j.And(b)
	if got := and.String(); got != "(and (a) (b))" {
		t.Errorf("unexpected conjunction form: %s", got)
	}
	if and.Matches("x") {
		t.Errorf("expected (a and b) to miss")
	}

	chained := j.And(b).Or(c)
	if got := chained.String(); got != "(or (and (a) (b)) (c))" {
		t.Errorf("unexpected chained form: %s", got)
	}
	if !chained.Matches("x") {
		t.Errorf("expected ((a and b) or c) to match")
	}

	// junction operands are unwrapped, not nested
	both := j.Or(matcher.NewJunction[string](c))
	if got := both.String(); got != "(or (a) (c))" {
		t.Errorf("unexpected disjunction form: %s", got)
	}
}

// stringEquals is the leaf fixture for compiler tests.
type stringEquals struct {
	value string
}

func (e *stringEquals) String() string { return fmt.Sprintf("(equals %q)", e.value) }

func (e *stringEquals) Matches(s string) bool { return s == e.value }

func stringLeaf(node ast.FilterNode) (matcher.Matcher[string], error) {
	switch n := node.(type) {
	case *ast.EqualOp:
		return &stringEquals{value: n.Right}, nil
	default:
		return nil, fmt.Errorf("unsupported op: %s", node.Op())
	}
}

func TestCompile(t *testing.T) {
	compiler := matcher.NewMatchCompiler(stringLeaf)

	cases := []struct {
		name           string
		tree           ast.FilterNode
		shouldMatch    []string
		shouldNotMatch []string
	}{
		{
			name:           "void is all pass",
			tree:           &ast.VoidOp{},
			shouldMatch:    []string{"", "anything"},
			shouldNotMatch: []string{},
		},
		{
			name:           "contradiction is all cut",
			tree:           &ast.ContradictionOp{},
			shouldMatch:    []string{},
			shouldNotMatch: []string{"", "anything"},
		},
		{
			name:           "bare leaf",
			tree:           &ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
			shouldMatch:    []string{"alpha"},
			shouldNotMatch: []string{"beta", "Alpha"},
		},
		{
			name: "negated leaf",
			tree: &ast.NotOp{
				Operand: &ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
			},
			shouldMatch:    []string{"beta"},
			shouldNotMatch: []string{"alpha"},
		},
		{
			name: "disjunction",
			tree: &ast.OrOp{Operands: []ast.FilterNode{
				&ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
				&ast.EqualOp{Left: ast.NewField("name"), Right: "beta"},
			}},
			shouldMatch:    []string{"alpha", "beta"},
			shouldNotMatch: []string{"gamma"},
		},
		{
			name: "nested groups",
			tree: &ast.AndOp{Operands: []ast.FilterNode{
				&ast.OrOp{Operands: []ast.FilterNode{
					&ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
					&ast.EqualOp{Left: ast.NewField("name"), Right: "beta"},
				}},
				&ast.NotOp{
					Operand: &ast.EqualOp{Left: ast.NewField("name"), Right: "beta"},
				},
			}},
			shouldMatch:    []string{"alpha"},
			shouldNotMatch: []string{"beta", "gamma"},
		},
		{
			name: "contradiction inside a group",
			tree: &ast.OrOp{Operands: []ast.FilterNode{
				&ast.ContradictionOp{},
				&ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
			}},
			shouldMatch:    []string{"alpha"},
			shouldNotMatch: []string{"beta"},
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("%d:%s", i, c.name), func(t *testing.T) {
			m, err := compiler.Compile(c.tree)
			if err != nil {
				t.Fatalf("unexpected compile error: %s", err)
			}

			for _, s := range c.shouldMatch {
				if !m.Matches(s) {
					t.Errorf("%s: expected %q to match", m, s)
				}
			}
			for _, s := range c.shouldNotMatch {
				if m.Matches(s) {
					t.Errorf("%s: expected %q not to match", m, s)
				}
			}
		})
	}
}

func TestCompileLeafError(t *testing.T) {
	compiler := matcher.NewMatchCompiler(stringLeaf)

	// the factory rejects flag nodes, even nested inside groups
	_, err := compiler.Compile(&ast.AndOp{Operands: []ast.FilterNode{
		&ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
		&ast.FlagOp{Field: ast.NewFlagField("public")},
	}})
	if err == nil {
		t.Fatalf("expected the leaf error to surface from Compile")
	}
}

func TestCompiledMatcherIsConcurrencySafe(t *testing.T) {
	compiler := matcher.NewMatchCompiler(stringLeaf)

	m, err := compiler.Compile(&ast.OrOp{Operands: []ast.FilterNode{
		&ast.EqualOp{Left: ast.NewField("name"), Right: "alpha"},
		&ast.EqualOp{Left: ast.NewField("name"), Right: "beta"},
	}})
	if err != nil {
		t.Fatalf("unexpected compile error: %s", err)
	}

	g := new(errgroup.Group)
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				if !m.Matches("alpha") || !m.Matches("beta") || m.Matches("gamma") {
					return fmt.Errorf("concurrent evaluation returned a wrong result")
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}
