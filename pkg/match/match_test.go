package match

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/byteloom/pointcut/pkg/match/ast"
	"github.com/byteloom/pointcut/pkg/method"
)

// graph is the class graph the compile tests select over:
//
//	java.lang.Object
//	    com.acme.Base extends Object
//	        com.acme.Service extends Base
//
// Base declares run(int), getValue(), setValue(int), raise() throws
// Exception, and copy(int,long). Service overrides run(int) (narrowed to
// throws IOException), toString(), and finalize(), and adds a constructor,
// a type initializer, and a few members with distinctive modifiers.
type graph struct {
	object    *method.Class
	throwable *method.Class
	exception *method.Class
	ioExc     *method.Class

	intType  *method.Class
	longType *method.Class
	strType  *method.Class

	base    *method.Class
	service *method.Class
}

func newGraph() *graph {
	g := &graph{}

	g.object = method.Object()
	g.throwable = &method.Class{TypeName: "java.lang.Throwable", Supers: []*method.Class{g.object}}
	g.exception = &method.Class{TypeName: "java.lang.Exception", Supers: []*method.Class{g.throwable}}
	g.ioExc = &method.Class{TypeName: "java.io.IOException", Supers: []*method.Class{g.exception}}

	g.intType = &method.Class{TypeName: "int"}
	g.longType = &method.Class{TypeName: "long"}
	g.strType = &method.Class{TypeName: "java.lang.String", Supers: []*method.Class{g.object}}

	g.base = &method.Class{TypeName: "com.acme.Base", Supers: []*method.Class{g.object}}
	g.base.Declare(&method.Member{MemberName: "run", Mods: method.ModifierPublic, Params: []method.Type{g.intType}})
	g.base.Declare(&method.Member{MemberName: "getValue", Mods: method.ModifierPublic, Return: g.intType})
	g.base.Declare(&method.Member{MemberName: "setValue", Mods: method.ModifierPublic, Params: []method.Type{g.intType}})
	g.base.Declare(&method.Member{MemberName: "raise", Mods: method.ModifierPublic, Throws: []method.Type{g.exception}})
	g.base.Declare(&method.Member{MemberName: "copy", Mods: method.ModifierPublic, Params: []method.Type{g.intType, g.longType}})

	g.service = &method.Class{TypeName: "com.acme.Service", Supers: []*method.Class{g.base}}
	g.service.Declare(&method.Member{MemberName: method.ConstructorName, Mods: method.ModifierPublic, Params: []method.Type{g.intType}})
	g.service.Declare(&method.Member{MemberName: method.TypeInitializerName, Mods: method.ModifierStatic})
	g.service.Declare(&method.Member{MemberName: "run", Mods: method.ModifierPublic, Params: []method.Type{g.intType}, Throws: []method.Type{g.ioExc}})
	g.service.Declare(&method.Member{MemberName: "close", Mods: method.ModifierPublic})
	g.service.Declare(&method.Member{MemberName: "finalize", Mods: method.ModifierProtected})
	g.service.Declare(&method.Member{MemberName: "handle"})
	g.service.Declare(&method.Member{MemberName: "alloc", Mods: method.ModifierPrivate | method.ModifierStatic | method.ModifierNative, Return: g.longType})
	g.service.Declare(&method.Member{MemberName: "log", Mods: method.ModifierPublic | method.ModifierVarArgs, Params: []method.Type{g.strType}})
	g.service.Declare(&method.Member{MemberName: "toString", Mods: method.ModifierPublic, Return: g.strType})

	return g
}

func (g *graph) resolver() TypeResolver {
	return ResolverFor(
		g.object, g.throwable, g.exception, g.ioExc,
		g.intType, g.longType, g.strType,
		g.base, g.service,
	)
}

// members flattens the whole graph into the description list the compile
// tests select from.
func (g *graph) members() []method.Description {
	var out []method.Description
	for _, c := range []*method.Class{g.object, g.base, g.service} {
		for _, m := range c.Members {
			out = append(out, m)
		}
	}
	return out
}

// refStrings renders members as sorted "declaring.name(sig)" strings so
// matched sets compare deterministically.
func refStrings(members []method.Description) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, method.RefOf(m).String())
	}
	sort.Strings(out)
	return out
}

func matchedRefs(m Matcher, members []method.Description) []string {
	var hits []method.Description
	for _, member := range members {
		if m.Matches(member) {
			hits = append(hits, member)
		}
	}
	return refStrings(hits)
}

func exclude(all []string, remove ...string) []string {
	drop := make(map[string]bool, len(remove))
	for _, r := range remove {
		drop[r] = true
	}

	out := make([]string, 0, len(all))
	for _, s := range all {
		if !drop[s] {
			out = append(out, s)
		}
	}
	return out
}

func TestCompileAndMatch(t *testing.T) {
	g := newGraph()
	resolver := g.resolver()
	all := refStrings(g.members())

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty selector matches everything",
			input: `   `,
			want:  all,
		},
		{
			name:  "public getters",
			input: `name<~:"get" + public`,
			want:  []string{"com.acme.Base.getValue()"},
		},
		{
			name:  "name across classes",
			input: `name:"run"`,
			want:  []string{"com.acme.Base.run(int)", "com.acme.Service.run(int)"},
		},
		{
			name:  "declared in base includes overrides",
			input: `declaredin:"com.acme.Base"`,
			want: []string{
				"com.acme.Base.copy(int,long)",
				"com.acme.Base.getValue()",
				"com.acme.Base.raise()",
				"com.acme.Base.run(int)",
				"com.acme.Base.setValue(int)",
				"com.acme.Service.run(int)",
			},
		},
		{
			name:  "exact signature",
			input: `args:"int","long"`,
			want:  []string{"com.acme.Base.copy(int,long)"},
		},
		{
			name:  "negated signature",
			input: `args!:"int"`,
			want: exclude(all,
				"com.acme.Base.run(int)",
				"com.acme.Base.setValue(int)",
				"com.acme.Service.<init>(int)",
				"com.acme.Service.run(int)",
			),
		},
		{
			name:  "argument count",
			input: `argcount:"2"`,
			want:  []string{"com.acme.Base.copy(int,long)"},
		},
		{
			name:  "zero argument getters ignoring case",
			input: `argcount:"0" + iname<~:"GET"`,
			want:  []string{"com.acme.Base.getValue()"},
		},
		{
			name:  "constructors",
			input: `constructor`,
			want:  []string{"com.acme.Service.<init>(int)", "java.lang.Object.<init>()"},
		},
		{
			name:  "one argument void constructors",
			input: `returns:"void" + constructor + argcount:"1"`,
			want:  []string{"com.acme.Service.<init>(int)"},
		},
		{
			// finalize declares Throwable, which admits any exception below it
			name:  "can throw io exception",
			input: `throws:"java.io.IOException"`,
			want: []string{
				"com.acme.Base.raise()",
				"com.acme.Service.run(int)",
				"java.lang.Object.finalize()",
			},
		},
		{
			// run(int) narrowed its clause to IOException, so the broader
			// Exception no longer fits through it
			name:  "can throw checked exception",
			input: `throws:"java.lang.Exception"`,
			want:  []string{"com.acme.Base.raise()", "java.lang.Object.finalize()"},
		},
		{
			name:  "static members",
			input: `static`,
			want:  []string{"com.acme.Service.<clinit>()", "com.acme.Service.alloc()"},
		},
		{
			name:  "package private members",
			input: `packageprivate`,
			want:  []string{"com.acme.Service.<clinit>()", "com.acme.Service.handle()"},
		},
		{
			name:  "varargs members",
			input: `varargs`,
			want:  []string{"com.acme.Service.log(java.lang.String)"},
		},
		{
			name:  "default finalize only",
			input: `defaultfinalize`,
			want:  []string{"java.lang.Object.finalize()"},
		},
		{
			name:  "finalize overrides via declaredin",
			input: `declaredin:"java.lang.Object" + name:"finalize"`,
			want:  []string{"com.acme.Service.finalize()", "java.lang.Object.finalize()"},
		},
		{
			name:  "negated group",
			input: `!(public | protected)`,
			want: []string{
				"com.acme.Service.<clinit>()",
				"com.acme.Service.alloc()",
				"com.acme.Service.handle()",
			},
		},
		{
			name:  "name pattern",
			input: `name=~:"get[A-Z].*"`,
			want:  []string{"com.acme.Base.getValue()"},
		},
		{
			name:  "internal name normalization on returns",
			input: `returns:"java/lang/String"`,
			want:  []string{"com.acme.Service.toString()", "java.lang.Object.toString()"},
		},
		{
			name:  "internal name normalization on args",
			input: `args:"java/lang/Object"`,
			want:  []string{"java.lang.Object.equals(java.lang.Object)"},
		},
		{
			name:  "disjunction",
			input: `name:"close" | name:"handle"`,
			want:  []string{"com.acme.Service.close()", "com.acme.Service.handle()"},
		},
		{
			name:  "signature conjunction or constructors",
			input: `(args:"int" + name:"run") | constructor`,
			want: []string{
				"com.acme.Base.run(int)",
				"com.acme.Service.<init>(int)",
				"com.acme.Service.run(int)",
				"java.lang.Object.<init>()",
			},
		},
		{
			name:  "name suffix",
			input: `name~>:"alue"`,
			want:  []string{"com.acme.Base.getValue()", "com.acme.Base.setValue(int)"},
		},
		{
			name:  "name contains",
			input: `name~:"and"`,
			want:  []string{"com.acme.Service.handle()"},
		},
		{
			name:  "exact name ignoring case",
			input: `iname:"GETVALUE"`,
			want:  []string{"com.acme.Base.getValue()"},
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("%d:%s", i, c.name), func(t *testing.T) {
			t.Logf("Query: %s", c.input)
			m, err := Compile(c.input, resolver)
			if err != nil {
				t.Fatalf("Unexpected compile error: %s", err)
			}

			want := append([]string{}, c.want...)
			sort.Strings(want)

			got := matchedRefs(m, g.members())
			if !cmp.Equal(want, got) {
				t.Errorf("matched set differs: %s", cmp.Diff(want, got))
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	g := newGraph()
	resolver := g.resolver()

	cases := []struct {
		name     string
		input    string
		resolver TypeResolver
	}{
		{
			name:     "unknown declaredin type",
			input:    `declaredin:"com.acme.Nope"`,
			resolver: resolver,
		},
		{
			name:     "unknown throws type",
			input:    `throws:"com.acme.Nope"`,
			resolver: resolver,
		},
		{
			name:     "declaredin without a resolver",
			input:    `declaredin:"com.acme.Base"`,
			resolver: nil,
		},
		{
			name:     "argcount is not a number",
			input:    `argcount:"two"`,
			resolver: resolver,
		},
		{
			name:     "argcount is negative",
			input:    `argcount:"-1"`,
			resolver: resolver,
		},
		{
			name:     "pattern on the ignore-case field",
			input:    `iname=~:"get.*"`,
			resolver: resolver,
		},
		{
			name:     "substring op on package",
			input:    `package~:"com"`,
			resolver: resolver,
		},
		{
			name:     "unparseable pattern",
			input:    `name=~:"get["`,
			resolver: resolver,
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("%d:%s", i, c.name), func(t *testing.T) {
			t.Logf("Query: %s", c.input)
			_, err := Compile(c.input, c.resolver)
			if err == nil {
				t.Fatal("Expected compile failure. Instead, got a matcher.")
			}

			t.Logf("Error: %s", err)
		})
	}
}

// Identity comparisons fall back to the bare name when the resolver does
// not know it, so a nil resolver still compiles returns and args.
func TestCompileLenientTypeNames(t *testing.T) {
	g := newGraph()

	m, err := Compile(`returns:"int"`, nil)
	if err != nil {
		t.Fatalf("Unexpected compile error: %s", err)
	}

	got := matchedRefs(m, g.members())
	want := []string{"com.acme.Base.getValue()", "java.lang.Object.hashCode()"}
	if !cmp.Equal(want, got) {
		t.Errorf("matched set differs: %s", cmp.Diff(want, got))
	}
}

// foldCasePass rewrites exact name comparisons onto the ignore-case field,
// standing in for the kind of pass callers can hang off the compiler.
type foldCasePass struct{}

func (p *foldCasePass) Exec(filter ast.FilterNode) (ast.FilterNode, error) {
	return ast.TransformLeaves(filter, func(node ast.FilterNode) ast.FilterNode {
		if eq, ok := node.(*ast.EqualOp); ok && MethodField(eq.Left.Name) == FieldName {
			return &ast.EqualOp{Left: FieldByName(FieldIName), Right: eq.Right}
		}
		return node
	}), nil
}

func TestCompilerExtraPass(t *testing.T) {
	g := newGraph()

	tree, err := parser.Parse(`name:"GETVALUE"`)
	if err != nil {
		t.Fatalf("Unexpected parse error: %s", err)
	}

	m, err := NewMethodMatchCompiler(g.resolver(), &foldCasePass{}).Compile(tree)
	if err != nil {
		t.Fatalf("Unexpected compile error: %s", err)
	}

	got := matchedRefs(m, g.members())
	want := []string{"com.acme.Base.getValue()"}
	if !cmp.Equal(want, got) {
		t.Errorf("matched set differs: %s", cmp.Diff(want, got))
	}
}
