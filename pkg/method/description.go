// Package method models the reflective metadata of JVM methods and
// constructors that matchers select over. The package owns only the
// read-side contracts (Description, Type) plus plain value implementations
// of both; producing descriptions from class files or a live VM is the
// responsibility of whatever metadata subsystem feeds this library.
package method

// Special member names used by the JVM for constructors and type
// initializers.
const (
	ConstructorName     = "<init>"
	TypeInitializerName = "<clinit>"
)

// Well known type names.
const (
	ObjectTypeName = "java.lang.Object"
	VoidTypeName   = "void"
)

// Description is a read-only view of a single method or constructor.
// Implementations must be immutable for the lifetime of a match evaluation;
// nothing in this library writes through a Description.
type Description interface {
	// Name returns the simple member name. Constructors are named "<init>"
	// and type initializers "<clinit>".
	Name() string

	// DeclaringType returns the type the member is physically declared on.
	DeclaringType() Type

	// Modifiers returns the member's JVM access flags.
	Modifiers() Modifiers

	// ParameterTypes returns the member's parameter types in declaration
	// order.
	ParameterTypes() []Type

	// ReturnType returns the member's return type. Void methods and
	// constructors report the void pseudo type.
	ReturnType() Type

	// ExceptionTypes returns the member's declared throwable types.
	ExceptionTypes() []Type

	// IsVarArgs returns true if the member was declared with a variadic
	// parameter.
	IsVarArgs() bool

	// IsSynthetic returns true if the member was emitted by the compiler
	// rather than written in source.
	IsSynthetic() bool

	// IsBridge returns true if the member is a compiler-emitted bridge
	// method.
	IsBridge() bool

	// IsConstructor returns true if the member is a constructor.
	IsConstructor() bool

	// Represents returns true if the member is exactly the method or
	// constructor the ref identifies.
	Represents(ref Ref) bool
}
