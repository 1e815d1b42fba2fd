package transform_test

import (
	"testing"

	"github.com/byteloom/pointcut/pkg/match/ast"
	"github.com/byteloom/pointcut/pkg/match/transform"
	"github.com/google/go-cmp/cmp"
)

func TestBinaryNamePass(t *testing.T) {
	original := &ast.AndOp{
		Operands: []ast.FilterNode{
			&ast.EqualOp{Left: ast.NewField("returns"), Right: "java/lang/String"},
			&ast.SequenceOp{Left: ast.NewSequenceField("args"), Values: []string{"int", "com/acme/Box"}},
			&ast.EqualOp{Left: ast.NewField("name"), Right: "get/Value"},
		},
	}

	result, err := transform.ApplyAll(original, []transform.CompilerPass{
		transform.BinaryNamePass("returns", "declaredin", "throws", "args", "package"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := &ast.AndOp{
		Operands: []ast.FilterNode{
			&ast.EqualOp{Left: ast.NewField("returns"), Right: "java.lang.String"},
			&ast.SequenceOp{Left: ast.NewSequenceField("args"), Values: []string{"int", "com.acme.Box"}},
			// name is not a type field, its value keeps the slash
			&ast.EqualOp{Left: ast.NewField("name"), Right: "get/Value"},
		},
	}

	if !cmp.Equal(ast.FilterNode(expected), result) {
		t.Errorf("unexpected rewrite:\n%s", cmp.Diff(ast.FilterNode(expected), result))
	}

	// ApplyAll clones before running passes, so the input tree keeps the
	// internal form.
	if got := original.Operands[0].(*ast.EqualOp).Right; got != "java/lang/String" {
		t.Errorf("pass mutated its input: %q", got)
	}
}

func TestApplyAllNoPasses(t *testing.T) {
	original := &ast.EqualOp{Left: ast.NewField("name"), Right: "toString"}

	result, err := transform.ApplyAll(original, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Without passes the input is returned as is, uncloned.
	if result != ast.FilterNode(original) {
		t.Errorf("expected the identical tree back")
	}
}
