package match

import "github.com/byteloom/pointcut/pkg/match/ast"

// MethodField is an enum that represents method description fields that can
// be compared against values (name, returns, etc.)
type MethodField string

// If you add a MethodField, make sure to update the leaf factory in
// compiler.go to lower comparisons on it, or every selector using it will
// fail to compile.
const (
	// FieldName compares the simple member name, case-sensitively.
	FieldName MethodField = "name"

	// FieldIName compares the simple member name, ignoring case.
	FieldIName MethodField = "iname"

	// FieldReturns compares the binary name of the return type. Void
	// methods and constructors carry the "void" pseudo type.
	FieldReturns MethodField = "returns"

	// FieldPackage compares the package of the declaring type. Exact
	// package only; subpackages do not count.
	FieldPackage MethodField = "package"

	// FieldDeclaredIn selects members a type declares, overrides included.
	FieldDeclaredIn MethodField = "declaredin"

	// FieldThrows selects members whose throws clause admits the type.
	FieldThrows MethodField = "throws"

	// FieldArgCount compares the parameter count. The value is quoted like
	// every other value: argcount:"0" selects zero-parameter members.
	FieldArgCount MethodField = "argcount"

	// FieldArgs compares the full ordered parameter type list.
	FieldArgs MethodField = "args"
)

// MethodFlag is an enum of the standalone keywords that test a boolean
// trait of a method description. Flags take no op and no value: `public`,
// `!static`.
type MethodFlag string

const (
	FlagPublic          MethodFlag = "public"
	FlagPrivate         MethodFlag = "private"
	FlagProtected       MethodFlag = "protected"
	FlagPackagePrivate  MethodFlag = "packageprivate"
	FlagStatic          MethodFlag = "static"
	FlagFinal           MethodFlag = "final"
	FlagSynchronized    MethodFlag = "synchronized"
	FlagNative          MethodFlag = "native"
	FlagStrict          MethodFlag = "strict"
	FlagVarArgs         MethodFlag = "varargs"
	FlagSynthetic       MethodFlag = "synthetic"
	FlagBridge          MethodFlag = "bridge"
	FlagConstructor     MethodFlag = "constructor"
	FlagTypeInitializer MethodFlag = "typeinitializer"
	FlagDefaultFinalize MethodFlag = "defaultfinalize"
)

// a slice of all the method field instances the lexer should recognize as
// valid left-hand comparators and flag keywords
var methodFilterFields []*ast.Field = []*ast.Field{
	ast.NewField(FieldName),
	ast.NewField(FieldIName),
	ast.NewField(FieldReturns),
	ast.NewField(FieldPackage),
	ast.NewField(FieldDeclaredIn),
	ast.NewField(FieldThrows),
	ast.NewField(FieldArgCount),
	ast.NewSequenceField(FieldArgs),
	ast.NewFlagField(FlagPublic),
	ast.NewFlagField(FlagPrivate),
	ast.NewFlagField(FlagProtected),
	ast.NewFlagField(FlagPackagePrivate),
	ast.NewFlagField(FlagStatic),
	ast.NewFlagField(FlagFinal),
	ast.NewFlagField(FlagSynchronized),
	ast.NewFlagField(FlagNative),
	ast.NewFlagField(FlagStrict),
	ast.NewFlagField(FlagVarArgs),
	ast.NewFlagField(FlagSynthetic),
	ast.NewFlagField(FlagBridge),
	ast.NewFlagField(FlagConstructor),
	ast.NewFlagField(FlagTypeInitializer),
	ast.NewFlagField(FlagDefaultFinalize),
}

// fieldMap is a lazily loaded mapping from MethodField to ast.Field
var fieldMap map[MethodField]*ast.Field

// flagMap is a lazily loaded mapping from MethodFlag to ast.Field
var flagMap map[MethodFlag]*ast.Field

func init() {
	fieldMap = make(map[MethodField]*ast.Field)
	flagMap = make(map[MethodFlag]*ast.Field)
	for _, f := range methodFilterFields {
		ff := *f
		if ff.IsFlag() {
			flagMap[MethodFlag(ff.Name)] = &ff
		} else {
			fieldMap[MethodField(ff.Name)] = &ff
		}
	}
}

// FieldByName returns only comparison fields by name. Callers assembling
// ASTs programmatically get the field with its sequence attribute intact.
func FieldByName(field MethodField) *ast.Field {
	if mf, ok := fieldMap[field]; ok {
		mfcopy := *mf
		return &mfcopy
	}

	return nil
}

// FlagByName returns only flag fields by name.
func FlagByName(flag MethodFlag) *ast.Field {
	if mf, ok := flagMap[flag]; ok {
		mfcopy := *mf
		return &mfcopy
	}

	return nil
}
